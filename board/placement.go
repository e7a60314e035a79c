// SPDX-License-Identifier: MIT
// Package: hexboard/board
//
// placement.go — legality checks and mutations for settlements, cities and roads.
//
// Every mutation runs its check and its write under one write lock, so the
// distance rule and ownership monotonicity hold even with concurrent callers.
// The check* helpers assume the caller holds b.mu.

package board

import (
	"fmt"

	"go.uber.org/zap"
)

// PlaceSettlement builds a settlement for player on vertexID.
//
// It fails, returning false and changing nothing, if the vertex is unknown
// or owned, if any neighbouring vertex is owned, or, outside the setup
// phase, if none of the vertex's edges is the player's road.
func (b *Board) PlaceSettlement(vertexID int, player PlayerID, setup bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkSettlement(vertexID, player, setup); err != nil {
		b.reject("settlement rejected", err, zap.Int("vertex", vertexID), zap.String("player", string(player)))
		return false
	}
	v := &b.vertices[vertexID]
	v.Owner = player
	v.Structure = Settlement
	b.log.Info("settlement placed",
		zap.Stringer("board", b.id),
		zap.Int("vertex", vertexID),
		zap.String("player", string(player)),
		zap.Bool("setup", setup),
	)

	return true
}

// PlaceRoad builds a road for player on edgeID.
//
// It fails if the edge is unknown or owned, or if the road would touch
// neither a settlement or city of the player nor another of the player's
// roads.
func (b *Board) PlaceRoad(edgeID int, player PlayerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRoad(edgeID, player); err != nil {
		b.reject("road rejected", err, zap.Int("edge", edgeID), zap.String("player", string(player)))
		return false
	}
	b.edges[edgeID].Owner = player
	b.log.Info("road placed",
		zap.Stringer("board", b.id),
		zap.Int("edge", edgeID),
		zap.String("player", string(player)),
	)

	return true
}

// UpgradeSettlement turns the player's settlement on vertexID into a city.
// It fails unless the vertex holds a settlement owned by player.
func (b *Board) UpgradeSettlement(vertexID int, player PlayerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkUpgrade(vertexID, player); err != nil {
		b.reject("upgrade rejected", err, zap.Int("vertex", vertexID), zap.String("player", string(player)))
		return false
	}
	b.vertices[vertexID].Structure = City
	b.log.Info("settlement upgraded",
		zap.Stringer("board", b.id),
		zap.Int("vertex", vertexID),
		zap.String("player", string(player)),
	)

	return true
}

// CanPlaceSettlement returns nil if PlaceSettlement would succeed, or the
// reason it would not.
func (b *Board) CanPlaceSettlement(vertexID int, player PlayerID, setup bool) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.checkSettlement(vertexID, player, setup)
}

// CanPlaceRoad returns nil if PlaceRoad would succeed, or the reason it
// would not.
func (b *Board) CanPlaceRoad(edgeID int, player PlayerID) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.checkRoad(edgeID, player)
}

// CanUpgrade returns nil if UpgradeSettlement would succeed, or the reason
// it would not.
func (b *Board) CanUpgrade(vertexID int, player PlayerID) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.checkUpgrade(vertexID, player)
}

// IsValidSettlementLocation reports whether vertexID exists, is unowned and
// has no owned neighbour. Road connectivity is not considered.
func (b *Board) IsValidSettlementLocation(vertexID int) bool {
	if !validVertex(vertexID) {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := &b.vertices[vertexID]
	if v.Occupied() {
		return false
	}
	_, crowded := b.occupiedNeighbour(v)

	return !crowded
}

// IsValidRoadLocation reports whether edgeID exists and is unowned.
func (b *Board) IsValidRoadLocation(edgeID int) bool {
	if !validEdge(edgeID) {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return !b.edges[edgeID].Occupied()
}

func (b *Board) checkSettlement(vertexID int, player PlayerID, setup bool) error {
	if !validVertex(vertexID) {
		return fmt.Errorf("%w %d", ErrUnknownVertex, vertexID)
	}
	if player == NoPlayer {
		return ErrNoPlayer
	}
	v := &b.vertices[vertexID]
	if v.Occupied() {
		return fmt.Errorf("%w: vertex %d belongs to %s", ErrOccupied, vertexID, v.Owner)
	}
	if n, crowded := b.occupiedNeighbour(v); crowded {
		return fmt.Errorf("%w: vertex %d is next to vertex %d", ErrDistanceRule, vertexID, n)
	}
	if !setup && !b.roadAt(v, player) {
		return fmt.Errorf("%w: no road of %s reaches vertex %d", ErrNotConnected, player, vertexID)
	}

	return nil
}

func (b *Board) checkRoad(edgeID int, player PlayerID) error {
	if !validEdge(edgeID) {
		return fmt.Errorf("%w %d", ErrUnknownEdge, edgeID)
	}
	if player == NoPlayer {
		return ErrNoPlayer
	}
	e := &b.edges[edgeID]
	if e.Occupied() {
		return fmt.Errorf("%w: edge %d belongs to %s", ErrOccupied, edgeID, e.Owner)
	}
	if !b.roadConnects(e, player) {
		return fmt.Errorf("%w: edge %d touches nothing of %s", ErrNotConnected, edgeID, player)
	}

	return nil
}

func (b *Board) checkUpgrade(vertexID int, player PlayerID) error {
	if !validVertex(vertexID) {
		return fmt.Errorf("%w %d", ErrUnknownVertex, vertexID)
	}
	if player == NoPlayer {
		return ErrNoPlayer
	}
	v := &b.vertices[vertexID]
	if v.Owner != player {
		return fmt.Errorf("%w: vertex %d, player %s", ErrNotOwner, vertexID, player)
	}
	if !v.IsSettlement() {
		return fmt.Errorf("%w: vertex %d holds a %s", ErrNotSettlement, vertexID, v.Structure)
	}

	return nil
}

// occupiedNeighbour returns the first owned neighbour of v, if any.
func (b *Board) occupiedNeighbour(v *Vertex) (int, bool) {
	for _, n := range v.Vertices {
		if b.vertices[n].Occupied() {
			return n, true
		}
	}
	return 0, false
}

// roadAt reports whether any edge incident to v is player's road.
func (b *Board) roadAt(v *Vertex, player PlayerID) bool {
	for _, e := range v.Edges {
		if b.edges[e].Owner == player {
			return true
		}
	}
	return false
}

// roadConnects reports whether a road on e would join the player's network:
// an endpoint carries the player's settlement or city, or another edge at an
// endpoint is already the player's road.
func (b *Board) roadConnects(e *Edge, player PlayerID) bool {
	for _, end := range e.Vertices {
		v := &b.vertices[end]
		if v.Owner == player && v.Structure != None {
			return true
		}
		for _, f := range v.Edges {
			if f != e.ID && b.edges[f].Owner == player {
				return true
			}
		}
	}
	return false
}

func (b *Board) reject(msg string, reason error, fields ...zap.Field) {
	fields = append(fields, zap.Stringer("board", b.id), zap.NamedError("reason", reason))
	b.log.Debug(msg, fields...)
}
