// SPDX-License-Identifier: MIT
// Package board_test covers construction, layout dealing and lookups.

package board_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/topology"
)

const (
	alice board.PlayerID = "alice"
	bob   board.PlayerID = "bob"
)

// newBoard returns a deterministic board for tests.
func newBoard(t *testing.T) *board.Board {
	t.Helper()
	return board.New(board.WithSeed(42))
}

func TestNew_Counts(t *testing.T) {
	b := newBoard(t)
	assert.Equal(t, 19, b.TileCount())
	assert.Equal(t, 54, b.VertexCount())
	assert.Equal(t, 72, b.EdgeCount())
	assert.Len(t, b.Tiles(), 19)
	assert.Equal(t, int64(42), b.Seed())
}

func TestInitialize_Multiset(t *testing.T) {
	want := map[board.Resource]int{
		board.Desert: 1, board.Wool: 4, board.Brick: 3,
		board.Grain: 4, board.Lumber: 4, board.Ore: 3,
	}
	wantNumbers := []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

	for seed := int64(0); seed < 20; seed++ {
		b := board.New(board.WithSeed(seed))
		got := map[board.Resource]int{}
		var numbers []int
		for _, tile := range b.Tiles() {
			got[tile.Resource]++
			if tile.Resource == board.Desert {
				assert.Equal(t, board.DesertNumber, tile.Number, "seed %d", seed)
				continue
			}
			numbers = append(numbers, tile.Number)
		}
		slices.Sort(numbers)
		assert.Equal(t, want, got, "seed %d", seed)
		assert.Equal(t, wantNumbers, numbers, "seed %d", seed)
	}
}

func TestInitialize_TilesFollowLayout(t *testing.T) {
	b := newBoard(t)
	for id, tile := range b.Tiles() {
		require.Equal(t, id, tile.ID)
		row, col, err := topology.TilePosition(id)
		require.NoError(t, err)
		assert.Equal(t, row, tile.Row)
		assert.Equal(t, col, tile.Col)
		corners, _ := topology.TileVertices(id)
		sides, _ := topology.TileEdges(id)
		assert.Equal(t, corners, tile.Vertices)
		assert.Equal(t, sides, tile.Edges)
	}
}

func TestInitialize_ClearsOwnership(t *testing.T) {
	b := newBoard(t)
	require.True(t, b.PlaceSettlement(0, alice, true))
	require.True(t, b.PlaceRoad(0, alice))
	id := b.ID()

	b.Initialize()

	assert.NotEqual(t, id, b.ID())
	assert.Equal(t, board.Holdings{}, b.Holdings(alice))
	for v := 0; v < b.VertexCount(); v++ {
		vx, err := b.Vertex(v)
		require.NoError(t, err)
		assert.False(t, vx.Occupied(), "vertex %d", v)
		assert.Equal(t, board.None, vx.Structure)
	}
	for e := 0; e < b.EdgeCount(); e++ {
		ed, err := b.Edge(e)
		require.NoError(t, err)
		assert.False(t, ed.Occupied(), "edge %d", e)
	}
}

func TestWithSeed_Reproducible(t *testing.T) {
	a := board.New(board.WithSeed(7))
	b := board.New(board.WithSeed(7))
	require.Equal(t, a.Tiles(), b.Tiles())

	a.Initialize()
	b.Initialize()
	assert.Equal(t, a.Tiles(), b.Tiles(), "later layouts follow the same sequence")
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestWithRand(t *testing.T) {
	a := board.New(board.WithRand(rand.New(rand.NewSource(3))))
	b := board.New(board.WithRand(rand.New(rand.NewSource(3))))
	assert.Equal(t, a.Tiles(), b.Tiles())
	assert.Zero(t, a.Seed())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { board.WithRand(nil) })
	assert.Panics(t, func() { board.WithLogger(nil) })
}

func TestLookups(t *testing.T) {
	b := newBoard(t)

	_, err := b.Tile(20)
	require.ErrorIs(t, err, board.ErrInvalidIndex)
	require.ErrorIs(t, err, board.ErrTileIndex)
	assert.EqualError(t, err, "board: invalid index: tile 20 (want 0..18)")

	last, err := b.Tile(18)
	require.NoError(t, err)
	assert.Equal(t, 18, last.ID)

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"tile -1", func() error { _, err := b.Tile(-1); return err }, board.ErrTileIndex},
		{"tile 19", func() error { _, err := b.Tile(19); return err }, board.ErrTileIndex},
		{"vertex -1", func() error { _, err := b.Vertex(-1); return err }, board.ErrVertexIndex},
		{"vertex 54", func() error { _, err := b.Vertex(54); return err }, board.ErrVertexIndex},
		{"edge -1", func() error { _, err := b.Edge(-1); return err }, board.ErrEdgeIndex},
		{"edge 72", func() error { _, err := b.Edge(72); return err }, board.ErrEdgeIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, board.ErrInvalidIndex)
		})
	}

	_, err = b.Vertex(53)
	assert.NoError(t, err)
	_, err = b.Edge(71)
	assert.NoError(t, err)
}

func TestLookups_ReturnCopies(t *testing.T) {
	b := newBoard(t)

	v, err := b.Vertex(8)
	require.NoError(t, err)
	require.Equal(t, []int{0, 7, 9}, v.Vertices)
	v.Vertices[0] = 99
	v.Owner = alice

	again, _ := b.Vertex(8)
	assert.Equal(t, []int{0, 7, 9}, again.Vertices)
	assert.False(t, again.Occupied())

	e, _ := b.Edge(7)
	assert.Equal(t, [2]int{2, 10}, e.Vertices)
	assert.Equal(t, []int{1, 2, 12, 13}, e.Edges)
	e.Edges[0] = 99
	again2, _ := b.Edge(7)
	assert.Equal(t, []int{1, 2, 12, 13}, again2.Edges)
}

func TestHoldings(t *testing.T) {
	b := newBoard(t)
	require.True(t, b.PlaceSettlement(0, alice, true))
	require.True(t, b.PlaceSettlement(2, bob, true))
	require.True(t, b.PlaceSettlement(9, alice, true))
	require.True(t, b.PlaceRoad(6, alice))
	require.True(t, b.PlaceRoad(0, alice))
	require.True(t, b.UpgradeSettlement(9, alice))

	assert.Equal(t, board.Holdings{
		Settlements: []int{0},
		Cities:      []int{9},
		Roads:       []int{0, 6},
	}, b.Holdings(alice))
	assert.Equal(t, board.Holdings{Settlements: []int{2}}, b.Holdings(bob))
	assert.Equal(t, board.Holdings{}, b.Holdings(board.NoPlayer))
}

func TestWithinDistance(t *testing.T) {
	b := newBoard(t)

	one, err := b.WithinDistance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8}, one)

	two, err := b.WithinDistance(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 2, 7, 9}, two)

	none, err := b.WithinDistance(0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = b.WithinDistance(0, -1)
	assert.ErrorIs(t, err, topology.ErrOptionViolation)

	_, err = b.WithinDistance(54, 1)
	assert.ErrorIs(t, err, board.ErrInvalidIndex)
}

func TestEnums(t *testing.T) {
	for _, r := range []board.Resource{board.Desert, board.Wool, board.Brick, board.Grain, board.Lumber, board.Ore} {
		got, err := board.ParseResource(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	got, err := board.ParseResource(" ORE ")
	require.NoError(t, err)
	assert.Equal(t, board.Ore, got)
	_, err = board.ParseResource("gold")
	assert.ErrorIs(t, err, board.ErrUnknownResource)
	assert.Equal(t, "Resource(9)", board.Resource(9).String())

	st, err := board.ParseStructure("City")
	require.NoError(t, err)
	assert.Equal(t, board.City, st)
	_, err = board.ParseStructure("castle")
	assert.ErrorIs(t, err, board.ErrUnknownStructure)
	assert.Equal(t, "settlement", board.Settlement.String())
}
