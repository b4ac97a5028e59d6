package enumerate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/enumerate"
	"github.com/katalvlaran/subgraphfsm/graph"
)

// starGraph builds u with two exclusive neighbors a, b and v isolated
// from both; connecting (u,v) is the A1 case (uOwn pair -> star).
func starGraph(t *testing.T) (*graph.Index, graph.Node, graph.Node) {
	t.Helper()
	idx := graph.NewIndex()
	u, v := n(1, 1), n(2, 1)
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, n(10, 1), 1)))
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, n(11, 1), 1)))
	return idx, u, v
}

func TestNewSubgraphsK4_A1StarCompletion(t *testing.T) {
	idx, u, v := starGraph(t)

	candidates := enumerate.NewSubgraphsK4(idx, u, v)
	require.Len(t, candidates, 1)
	assert.Contains(t, keys(candidates), idSetOf(1, 2, 10, 11))
}

// diamondSharedGraph builds two vertices w1, w2 each already adjacent
// to both u and v (before the u-v edge exists): common = {w1, w2},
// the R4 replacement case.
func diamondSharedGraph(t *testing.T) (*graph.Index, graph.Node, graph.Node) {
	t.Helper()
	idx := graph.NewIndex()
	u, v := n(1, 1), n(2, 1)
	w1, w2 := n(3, 1), n(4, 1)
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, w1, 1)))
	require.NoError(t, idx.AddEdge(graph.NewEdge(v, w1, 1)))
	require.NoError(t, idx.AddEdge(graph.NewEdge(u, w2, 1)))
	require.NoError(t, idx.AddEdge(graph.NewEdge(v, w2, 1)))
	return idx, u, v
}

func TestAllSubgraphsK4_R4CommonPairIsReplacement(t *testing.T) {
	idx, u, v := diamondSharedGraph(t)

	additions, replacements := enumerate.AllSubgraphsK4(idx, u, v)
	assert.Empty(t, additions, "{u,v,w1,w2} was already connected via w1 and w2 before the u-v edge")
	require.Len(t, replacements, 1)
	assert.Contains(t, keys(replacements), idSetOf(1, 2, 3, 4))
}

func TestNewSubgraphsK4_IsolatedPairHasNoCandidates(t *testing.T) {
	idx := graph.NewIndex()
	u, v := n(1, 1), n(2, 1)
	assert.Empty(t, enumerate.NewSubgraphsK4(idx, u, v))
}
