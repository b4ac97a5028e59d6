package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subgraphfsm/graph"
)

func triangle() ([]graph.Node, []graph.Edge) {
	nodes := []graph.Node{node(3, 1), node(1, 2), node(2, 1)}
	edges := []graph.Edge{
		graph.NewEdge(node(1, 2), node(2, 1), 5),
		graph.NewEdge(node(2, 1), node(3, 1), 6),
		graph.NewEdge(node(1, 2), node(3, 1), 7),
	}
	return nodes, edges
}

func TestMakeSubgraph_SortsNodesAndEdges(t *testing.T) {
	nodes, edges := triangle()
	sg := graph.MakeSubgraph(nodes, edges)

	assert.Equal(t, []graph.Node{node(1, 2), node(2, 1), node(3, 1)}, sg.Nodes)
	for i := 1; i < len(sg.Edges); i++ {
		assert.True(t, sg.Edges[i-1].Less(sg.Edges[i]))
	}
}

func TestSubgraph_Key_IgnoresInputOrder(t *testing.T) {
	nodes, edges := triangle()
	sg1 := graph.MakeSubgraph(nodes, edges)

	reversedNodes := []graph.Node{nodes[2], nodes[1], nodes[0]}
	reversedEdges := []graph.Edge{edges[2], edges[1], edges[0]}
	sg2 := graph.MakeSubgraph(reversedNodes, reversedEdges)

	assert.Equal(t, sg1.Key(), sg2.Key())
}

func TestSubgraph_Key_DiffersOnDifferentEdgeLabel(t *testing.T) {
	nodes, edges := triangle()
	sg1 := graph.MakeSubgraph(nodes, edges)

	edges[0].Label = 99
	sg2 := graph.MakeSubgraph(nodes, edges)

	assert.NotEqual(t, sg1.Key(), sg2.Key())
}

func TestSubgraph_WithAddedEdgeAndWithRemovedEdge_AreInverse(t *testing.T) {
	nodes, edges := triangle()
	base := graph.MakeSubgraph(nodes, edges[:2])

	added := base.WithAddedEdge(edges[2])
	assert.Len(t, added.Edges, 3)

	removed := added.WithRemovedEdge(edges[2])
	assert.Equal(t, base.Key(), removed.Key())
}

func TestSubgraph_WithEdges_ReusesNodeList(t *testing.T) {
	nodes, edges := triangle()
	base := graph.MakeSubgraph(nodes, edges)

	replaced := base.WithEdges(edges[:1])
	assert.Same(t, &base.Nodes[0], &replaced.Nodes[0], "WithEdges must reuse the node slice")
	assert.Len(t, replaced.Edges, 1)
}

func TestNodeIDSet_Key_IsOrderIndependent(t *testing.T) {
	a := graph.NodeIDSet{1: {}, 2: {}, 3: {}}
	b := graph.NodeIDSet{3: {}, 1: {}, 2: {}}
	assert.Equal(t, a.Key(), b.Key())

	c := graph.NodeIDSet{1: {}, 2: {}}
	assert.NotEqual(t, a.Key(), c.Key())
}
