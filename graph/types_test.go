package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subgraphfsm/graph"
)

func TestNewEdge_Canonicalizes(t *testing.T) {
	a := graph.Node{ID: 5, Label: 1}
	b := graph.Node{ID: 2, Label: 2}

	e := graph.NewEdge(a, b, 9)
	assert.Equal(t, b, e.U)
	assert.Equal(t, a, e.V)
	assert.Equal(t, 9, e.Label)

	same := graph.NewEdge(b, a, 9)
	assert.Equal(t, e, same, "NewEdge must be order-independent in its endpoints")
}

func TestNewEdge_PanicsOnSelfLoop(t *testing.T) {
	n := graph.Node{ID: 1, Label: 1}
	assert.Panics(t, func() { graph.NewEdge(n, n, 1) })
}

func TestNode_Less(t *testing.T) {
	a := graph.Node{ID: 1, Label: 9}
	b := graph.Node{ID: 2, Label: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	c := graph.Node{ID: 1, Label: 0}
	assert.True(t, c.Less(a), "ties on ID break on Label")
}

func TestEdge_Less(t *testing.T) {
	u, v, w := graph.Node{ID: 1}, graph.Node{ID: 2}, graph.Node{ID: 3}
	e1 := graph.NewEdge(u, v, 1)
	e2 := graph.NewEdge(u, w, 1)
	assert.True(t, e1.Less(e2))
	assert.False(t, e2.Less(e1))
}

func TestToSubgraphEdge_DropsLabels(t *testing.T) {
	u := graph.Node{ID: 1, Label: 7}
	v := graph.Node{ID: 2, Label: 3}
	e := graph.NewEdge(u, v, 4)
	assert.Equal(t, graph.SubgraphEdge{U: 1, V: 2, Label: 4}, e.ToSubgraphEdge())
}
