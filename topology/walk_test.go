package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexboard/topology"
)

func TestReachable_WholeBoard(t *testing.T) {
	w, err := topology.Reachable(0)
	require.NoError(t, err)
	assert.Len(t, w.Order, topology.VertexCount)
	assert.Equal(t, 0, w.Order[0])
	assert.Equal(t, 0, w.Depth[0])
	_, hasParent := w.Parent[0]
	assert.False(t, hasParent)

	// depths grow by exactly one along parent links.
	for v, p := range w.Parent {
		assert.Equal(t, w.Depth[p]+1, w.Depth[v], "vertex %d parent %d", v, p)
	}
}

func TestReachable_MaxDepth(t *testing.T) {
	w, err := topology.Reachable(9, topology.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{9, 8, 10, 19}, w.Order)

	w, err = topology.Reachable(0, topology.WithMaxDepth(2))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 8, 2, 7, 9}, w.Order)
}

func TestReachable_Filter(t *testing.T) {
	blocked := map[int]bool{1: true, 8: true}
	w, err := topology.Reachable(0, topology.WithFilter(func(_, to int) bool { return !blocked[to] }))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, w.Order)
}

func TestReachable_Errors(t *testing.T) {
	_, err := topology.Reachable(-1)
	assert.ErrorIs(t, err, topology.ErrOutOfRange)

	_, err = topology.Reachable(topology.VertexCount)
	assert.ErrorIs(t, err, topology.ErrOutOfRange)

	_, err = topology.Reachable(0, topology.WithMaxDepth(-3))
	assert.ErrorIs(t, err, topology.ErrOptionViolation)
}

func TestReachable_MalformedTableIsSafe(t *testing.T) {
	tbl := topology.Canonical()
	tbl.VertexVertices[0] = []int{1, 500, -2}

	w, err := tbl.Reachable(0)
	require.NoError(t, err)
	assert.Len(t, w.Order, topology.VertexCount)
}
