// Package hexboard models the 19-tile hexagonal board of a settle-and-trade
// game: its fixed geometry, who owns which corner and side, and what a dice
// roll pays out.
//
// 🚀 What is in hexboard?
//
//	A small, thread-safe library organized by concern:
//		• Geometry: 54 corners, 72 sides and 19 tiles as immutable tables
//		• Placement: settlements, roads and cities under the distance rule
//		• Production: dice rolls credited to a player's hand
//
// ✨ Guarantees
//
//   - Ownership only ever moves forward: unowned → owned, settlement → city
//   - Rejected placements change nothing and say why (Can* methods)
//   - Every lookup is bounds-checked and returns a copy
//   - Layouts are reproducible from a seed
//
// Subpackages:
//
//	topology/     — adjacency tables, their self-check, breadth-first walks
//	board/        — the Board: layout dealing, placement rules, production
//	player/       — resource hands and build costs
//	cmd/hexboard/ — CLI: layout, check, play
//
// Quick ASCII example, tile 0 and its corners:
//
//	      1
//	  0 /   \ 2
//	   |     |
//	  8 \   / 10
//	      9
//
//	go get github.com/katalvlaran/hexboard
package hexboard
