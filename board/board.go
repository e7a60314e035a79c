// SPDX-License-Identifier: MIT
// Package: hexboard/board
//
// board.go — the Board type, layout initialization and bounds-checked lookups.

package board

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/hexboard/topology"
)

// DesertNumber is the activation number carried by the desert. No roll
// ever activates the desert, whatever its number.
const DesertNumber = 7

// resourceTokens is the fixed multiset dealt to the tiles.
var resourceTokens = [topology.TileCount]Resource{
	Desert,
	Wool, Wool, Wool, Wool,
	Brick, Brick, Brick,
	Grain, Grain, Grain, Grain,
	Lumber, Lumber, Lumber, Lumber,
	Ore, Ore, Ore,
}

// numberTokens is the fixed multiset of activation numbers, one per
// producing tile.
var numberTokens = [topology.TileCount - 1]int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11}

// Board owns every tile, vertex and edge of one game.
//
// mu guards all fields below it. Entities live in fixed arrays indexed by
// id; they are created by initialize and afterwards only their owner and
// structure fields change.
type Board struct {
	mu sync.RWMutex

	id   uuid.UUID
	seed int64
	rng  *rand.Rand
	log  *zap.Logger

	tiles    [topology.TileCount]Tile
	vertices [topology.VertexCount]Vertex
	edges    [topology.EdgeCount]Edge
}

// New builds a Board and initializes a random layout immediately.
// Complexity: O(V + E + T).
func New(opts ...Option) *Board {
	cfg := newConfig(opts)
	b := &Board{
		seed: cfg.seed,
		rng:  cfg.rng,
		log:  cfg.log,
	}
	b.initialize()

	return b
}

// Initialize deals a fresh resource and number layout and rebuilds every
// vertex and edge unowned. Each call draws from the board's RNG, so
// successive calls produce different layouts; the board id changes too.
func (b *Board) Initialize() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialize()
}

func (b *Board) initialize() {
	resources := resourceTokens
	numbers := numberTokens
	b.rng.Shuffle(len(resources), func(i, j int) { resources[i], resources[j] = resources[j], resources[i] })
	b.rng.Shuffle(len(numbers), func(i, j int) { numbers[i], numbers[j] = numbers[j], numbers[i] })

	// 1) Deal resources row-major; the desert takes no number.
	var (
		next   int
		desert = -1
	)
	for id := range b.tiles {
		row, col, _ := topology.TilePosition(id)
		t := Tile{ID: id, Row: row, Col: col, Resource: resources[id], Number: DesertNumber}
		if t.Resource == Desert {
			desert = id
		} else {
			t.Number = numbers[next]
			next++
		}
		b.tiles[id] = t
	}

	// 2) Wire vertices and edges from the topology tables.
	for v := range b.vertices {
		b.vertices[v] = Vertex{
			ID:       v,
			Vertices: topology.VertexVertices(v),
			Edges:    topology.VertexEdges(v),
		}
	}
	for e := range b.edges {
		ends, _ := topology.EdgeVertices(e)
		b.edges[e] = Edge{
			ID:       e,
			Vertices: ends,
			Edges:    topology.EdgeEdges(e),
		}
	}

	// 3) Hand every tile its corners and sides.
	for id := range b.tiles {
		b.tiles[id].Vertices, _ = topology.TileVertices(id)
		b.tiles[id].Edges, _ = topology.TileEdges(id)
	}

	b.id = uuid.New()
	b.log.Info("board initialized",
		zap.Stringer("board", b.id),
		zap.Int64("seed", b.seed),
		zap.Int("desert", desert),
	)
}

// ID returns the identifier of the current layout. It changes on every
// Initialize.
func (b *Board) ID() uuid.UUID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.id
}

// Seed returns the seed the board's RNG started from, or 0 when the RNG was
// supplied with WithRand.
func (b *Board) Seed() int64 { return b.seed }

// TileCount returns the number of tiles (19).
func (b *Board) TileCount() int { return topology.TileCount }

// VertexCount returns the number of vertices (54).
func (b *Board) VertexCount() int { return topology.VertexCount }

// EdgeCount returns the number of edges (72).
func (b *Board) EdgeCount() int { return topology.EdgeCount }

// Tile returns a copy of tile id.
// Returns an error wrapping ErrTileIndex (and ErrInvalidIndex) if id is not
// in 0..18.
func (b *Board) Tile(id int) (Tile, error) {
	if id < 0 || id >= topology.TileCount {
		return Tile{}, fmt.Errorf("%w %d (want 0..%d)", ErrTileIndex, id, topology.TileCount-1)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.tiles[id], nil
}

// Vertex returns a copy of vertex id.
// Returns an error wrapping ErrVertexIndex (and ErrInvalidIndex) if id is
// not in 0..53.
func (b *Board) Vertex(id int) (Vertex, error) {
	if !validVertex(id) {
		return Vertex{}, fmt.Errorf("%w %d (want 0..%d)", ErrVertexIndex, id, topology.VertexCount-1)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.vertices[id].clone(), nil
}

// Edge returns a copy of edge id.
// Returns an error wrapping ErrEdgeIndex (and ErrInvalidIndex) if id is not
// in 0..71.
func (b *Board) Edge(id int) (Edge, error) {
	if !validEdge(id) {
		return Edge{}, fmt.Errorf("%w %d (want 0..%d)", ErrEdgeIndex, id, topology.EdgeCount-1)
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.edges[id].clone(), nil
}

// Tiles returns copies of all tiles in row-major order.
func (b *Board) Tiles() []Tile {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.tiles[:])
}

// Holdings lists the settlements, cities and roads owned by player.
func (b *Board) Holdings(player PlayerID) Holdings {
	var h Holdings
	if player == NoPlayer {
		return h
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := range b.vertices {
		v := &b.vertices[i]
		if v.Owner != player {
			continue
		}
		switch v.Structure {
		case Settlement:
			h.Settlements = append(h.Settlements, v.ID)
		case City:
			h.Cities = append(h.Cities, v.ID)
		}
	}
	for i := range b.edges {
		if b.edges[i].Owner == player {
			h.Roads = append(h.Roads, b.edges[i].ID)
		}
	}

	return h
}

// WithinDistance returns the vertices at most hops edges away from vertexID,
// excluding vertexID itself, in breadth-first order. It depends on topology
// only, not on ownership.
func (b *Board) WithinDistance(vertexID, hops int) ([]int, error) {
	if !validVertex(vertexID) {
		return nil, fmt.Errorf("%w %d (want 0..%d)", ErrVertexIndex, vertexID, topology.VertexCount-1)
	}
	if hops == 0 {
		// the walker reads depth 0 as "no limit"
		return []int{}, nil
	}
	w, err := topology.Reachable(vertexID, topology.WithMaxDepth(hops))
	if err != nil {
		return nil, fmt.Errorf("board: WithinDistance(%d, %d): %w", vertexID, hops, err)
	}

	return w.Order[1:], nil
}

func validVertex(id int) bool { return id >= 0 && id < topology.VertexCount }

func validEdge(id int) bool { return id >= 0 && id < topology.EdgeCount }

func (v Vertex) clone() Vertex {
	v.Vertices = slices.Clone(v.Vertices)
	v.Edges = slices.Clone(v.Edges)
	return v
}

func (e Edge) clone() Edge {
	e.Edges = slices.Clone(e.Edges)
	return e
}
