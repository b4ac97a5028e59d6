package reservoir_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/graph"
	"github.com/katalvlaran/subgraphfsm/reservoir"
)

func node(id, label int) graph.Node { return graph.Node{ID: id, Label: label} }

func triangle(a, b, c int) graph.Subgraph {
	nodes := []graph.Node{node(a, 1), node(b, 1), node(c, 1)}
	edges := []graph.Edge{
		graph.NewEdge(node(a, 1), node(b, 1), 1),
		graph.NewEdge(node(a, 1), node(c, 1), 1),
		graph.NewEdge(node(b, 1), node(c, 1), 1),
	}
	return graph.MakeSubgraph(nodes, edges)
}

func TestReservoir_AddContainsLen(t *testing.T) {
	r := reservoir.New()
	sg := triangle(1, 2, 3)

	assert.False(t, r.Contains(sg))
	assert.True(t, r.Add(sg))
	assert.True(t, r.Contains(sg))
	assert.Equal(t, 1, r.Len())

	assert.False(t, r.Add(sg), "adding an already-present subgraph reports false")
	assert.Equal(t, 1, r.Len())
}

func TestReservoir_RemoveIsIdempotentFalse(t *testing.T) {
	r := reservoir.New()
	sg := triangle(1, 2, 3)

	assert.False(t, r.Remove(sg))

	require.True(t, r.Add(sg))
	assert.True(t, r.Remove(sg))
	assert.False(t, r.Contains(sg))
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Remove(sg), "removing twice reports false the second time")
}

func TestReservoir_IsFull(t *testing.T) {
	r := reservoir.New()
	assert.False(t, r.IsFull(1))
	require.True(t, r.Add(triangle(1, 2, 3)))
	assert.True(t, r.IsFull(1))
	assert.False(t, r.IsFull(2))
}

func TestReservoir_CommonSubgraphs(t *testing.T) {
	r := reservoir.New()
	sg1 := triangle(1, 2, 3)
	sg2 := triangle(1, 2, 4)
	sg3 := triangle(5, 6, 7)
	require.True(t, r.Add(sg1))
	require.True(t, r.Add(sg2))
	require.True(t, r.Add(sg3))

	common := r.CommonSubgraphs(1, 2)
	require.Len(t, common, 2)

	assert.Empty(t, r.CommonSubgraphs(1, 99), "a vertex absent from every member yields nothing")
	assert.Empty(t, r.CommonSubgraphs(5, 2), "vertices never co-occurring in a member yield nothing")
}

func TestReservoir_Replace(t *testing.T) {
	r := reservoir.New()

	wedge := graph.MakeSubgraph(
		[]graph.Node{node(1, 1), node(2, 1), node(3, 1)},
		[]graph.Edge{graph.NewEdge(node(1, 1), node(2, 1), 1)},
	)
	require.True(t, r.Add(wedge))

	closed := triangle(1, 2, 3)
	r.Replace(wedge, closed)

	assert.False(t, r.Contains(wedge))
	assert.True(t, r.Contains(closed))
	assert.Equal(t, 1, r.Len())
	assert.Len(t, r.CommonSubgraphs(1, 2), 1)
}

func TestReservoir_Random_PanicsWhenEmpty(t *testing.T) {
	r := reservoir.New()
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { r.Random(rng) })
}

func TestReservoir_Random_AlwaysReturnsAMember(t *testing.T) {
	r := reservoir.New()
	require.True(t, r.Add(triangle(1, 2, 3)))
	require.True(t, r.Add(triangle(4, 5, 6)))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		sg := r.Random(rng)
		assert.True(t, r.Contains(sg))
	}
}
