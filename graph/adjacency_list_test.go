package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/graph"
)

func node(id, label int) graph.Node { return graph.Node{ID: id, Label: label} }

func TestIndex_AddEdge_RejectsDuplicate(t *testing.T) {
	idx := graph.NewIndex()
	e := graph.NewEdge(node(1, 1), node(2, 1), 1)

	require.NoError(t, idx.AddEdge(e))
	assert.True(t, idx.Contains(e))

	err := idx.AddEdge(e)
	assert.ErrorIs(t, err, graph.ErrEdgeExists)
}

func TestIndex_RemoveEdge_RejectsMissing(t *testing.T) {
	idx := graph.NewIndex()
	e := graph.NewEdge(node(1, 1), node(2, 1), 1)

	err := idx.RemoveEdge(e)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	require.NoError(t, idx.AddEdge(e))
	require.NoError(t, idx.RemoveEdge(e))
	assert.False(t, idx.Contains(e))
}

func TestIndex_AdjacencyIsSymmetric(t *testing.T) {
	idx := graph.NewIndex()
	u, v := node(1, 1), node(2, 2)
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, v, 3)))

	_, vNbrs := neighborsOf(idx, v)
	_, uNbrs := neighborsOf(idx, u)
	assert.Contains(t, uNbrs, v)
	assert.Contains(t, vNbrs, u)
}

func neighborsOf(idx *graph.Index, n graph.Node) (graph.Node, map[graph.Node]struct{}) {
	return n, idx.Neighbors(n)
}

func TestIndex_RemoveEdge_ReclaimsEmptyNeighborSet(t *testing.T) {
	idx := graph.NewIndex()
	u, v := node(1, 1), node(2, 2)
	e := graph.NewEdge(u, v, 1)
	require.NoError(t, idx.AddEdge(e))
	require.NoError(t, idx.RemoveEdge(e))

	assert.Empty(t, idx.Neighbors(u))
	assert.Empty(t, idx.Neighbors(v))
}

func TestIndex_NeighborsByIDAndNodeByID(t *testing.T) {
	idx := graph.NewIndex()
	u, v := node(10, 1), node(20, 2)
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, v, 5)))

	n, nbrs, ok := idx.NeighborsByID(10)
	require.True(t, ok)
	assert.Equal(t, u, n)
	assert.Contains(t, nbrs, v)

	_, _, ok = idx.NeighborsByID(99)
	assert.False(t, ok)

	got, ok := idx.NodeByID(20)
	require.True(t, ok)
	assert.Equal(t, v, got)
}

func TestIndex_EdgeLabel(t *testing.T) {
	idx := graph.NewIndex()
	u, v := node(1, 1), node(2, 1)
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, v, 7)))

	label, ok := idx.EdgeLabel(2, 1)
	require.True(t, ok)
	assert.Equal(t, 7, label)

	_, ok = idx.EdgeLabel(1, 3)
	assert.False(t, ok)
}

func TestIndex_ContainsPair(t *testing.T) {
	idx := graph.NewIndex()
	u, v := node(1, 1), node(2, 1)
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, v, 1)))

	assert.True(t, idx.ContainsPair(1, 2))
	assert.True(t, idx.ContainsPair(2, 1))
	assert.False(t, idx.ContainsPair(1, 3))
}
