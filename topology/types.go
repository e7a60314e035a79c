// SPDX-License-Identifier: MIT
// Package: hexboard/topology
//
// types.go — board dimensions, sentinel errors and the Table type.

package topology

import "errors"

// Board dimensions.
const (
	// TileCount is the number of hexagonal tiles.
	TileCount = 19
	// VertexCount is the number of tile corners.
	VertexCount = 54
	// EdgeCount is the number of tile sides.
	EdgeCount = 72
	// TileSides is the number of corners (and sides) of one tile.
	TileSides = 6
)

// RowSizes is the number of tiles in each board row, top to bottom.
var RowSizes = [...]int{3, 4, 5, 4, 3}

// Sentinel errors for topology lookups and validation.
var (
	// ErrOutOfRange indicates an id outside the declared range.
	ErrOutOfRange = errors.New("topology: id out of range")

	// ErrShape indicates wrong table sizes, ids out of range, duplicated or
	// self-referencing entries.
	ErrShape = errors.New("topology: malformed table")

	// ErrAsymmetric indicates a neighbour relation listed in one direction only.
	ErrAsymmetric = errors.New("topology: asymmetric adjacency")

	// ErrCrossMismatch indicates that vertex and edge tables disagree.
	ErrCrossMismatch = errors.New("topology: vertex/edge incidence mismatch")

	// ErrOpenHexagon indicates a tile whose vertices and edges do not close.
	ErrOpenHexagon = errors.New("topology: tile hexagon not closed")

	// ErrDisconnected indicates a vertex unreachable from vertex 0.
	ErrDisconnected = errors.New("topology: vertex graph disconnected")

	// ErrOptionViolation indicates an invalid WalkOption value.
	ErrOptionViolation = errors.New("topology: invalid option supplied")
)

// Table is a complete set of adjacency lists for one board.
//
// The zero value is not useful; obtain the built-in board with Canonical.
// A Table may be modified freely by its holder (tests corrupt copies on
// purpose) and checked with Validate.
type Table struct {
	// VertexVertices[v] lists the vertices one edge away from v.
	VertexVertices [][]int

	// VertexEdges[v] lists the edges incident to v.
	VertexEdges [][]int

	// EdgeVertices[e] holds the two endpoints of e.
	EdgeVertices [][2]int

	// EdgeEdges[e] lists the edges sharing an endpoint with e.
	EdgeEdges [][]int

	// TileVertices[t] holds the six corners of tile t.
	TileVertices [][TileSides]int

	// TileEdges[t] holds the six sides of tile t.
	TileEdges [][TileSides]int
}
