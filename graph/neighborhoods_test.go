package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/graph"
)

// pathWithBranch builds a path 1-2-3-4 plus 2-5, used across the neighborhood
// tests below: 2 hops from 1 reaches {3, 5}, both only via 2.
func pathWithBranch() *graph.Index {
	idx := graph.NewIndex()
	edges := []graph.Edge{
		graph.NewEdge(node(1, 1), node(2, 1), 1),
		graph.NewEdge(node(2, 1), node(3, 1), 1),
		graph.NewEdge(node(3, 1), node(4, 1), 1),
		graph.NewEdge(node(2, 1), node(5, 1), 1),
	}
	for _, e := range edges {
		if err := idx.AddEdge(e); err != nil {
			panic(err)
		}
	}
	return idx
}

func TestTwoHopNeighborhood_FindsSecondDegreeVertices(t *testing.T) {
	idx := pathWithBranch()

	result := idx.TwoHopNeighborhood(node(1, 1), nil, nil)

	three := node(3, 1)
	via, ok := result[three]
	require.True(t, ok, "3 is two hops from 1")
	assert.Contains(t, via, node(2, 1))

	_, ok = result[node(2, 1)]
	assert.False(t, ok, "one-hop neighbors must be excluded")
	_, ok = result[node(1, 1)]
	assert.False(t, ok, "source must be excluded")
}

func TestTwoHopNeighborhood_RestrictsThrough(t *testing.T) {
	idx := pathWithBranch()

	empty := map[graph.Node]struct{}{}
	result := idx.TwoHopNeighborhood(node(1, 1), empty, nil)
	assert.Empty(t, result, "no intermediaries allowed means no results")
}

func TestInducedEdges_ReturnsOnlyEdgesAmongGivenNodes(t *testing.T) {
	idx := pathWithBranch()

	edges := idx.InducedEdges([]graph.Node{node(1, 1), node(2, 1), node(4, 1)})
	require.Len(t, edges, 1)
	assert.Equal(t, node(1, 1), edges[0].U)
	assert.Equal(t, node(2, 1), edges[0].V)
}

func TestInducedEdges_UnorderedInputOrderedOutput(t *testing.T) {
	idx := pathWithBranch()

	edges := idx.InducedEdges([]graph.Node{node(3, 1), node(2, 1), node(5, 1), node(4, 1)})
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.True(t, edges[i-1].Less(edges[i]) || edges[i-1] == edges[i])
	}
}

func TestNHopNeighborhood_OneHopMatchesNeighbors(t *testing.T) {
	idx := pathWithBranch()

	sets := idx.NHopNeighborhood(node(2, 1), 1)
	require.Len(t, sets, 3, "2 has three 1-hop pairs: {2,1} {2,3} {2,5}")
}

func TestNHopNeighborhood_ZeroHopsIsSingleton(t *testing.T) {
	idx := pathWithBranch()

	sets := idx.NHopNeighborhood(node(1, 1), 0)
	require.Len(t, sets, 1)
	for _, members := range sets {
		assert.Len(t, members, 1)
		_, ok := members[node(1, 1)]
		assert.True(t, ok)
	}
}
