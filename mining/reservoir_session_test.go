package mining_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/graph"
	"github.com/katalvlaran/subgraphfsm/mining"
)

// buildTriangleStream returns a small edge stream that repeatedly
// forms fresh triangles across disjoint vertex triples, so a
// reservoir of size smaller than the number of triangles formed is
// guaranteed to start evicting.
func buildTriangleStream(count int) []graph.Edge {
	var edges []graph.Edge
	id := 1
	for i := 0; i < count; i++ {
		a, b, c := id, id+1, id+2
		id += 3
		edges = append(edges,
			graph.NewEdge(node(a, 1), node(b, 1), 1),
			graph.NewEdge(node(a, 1), node(c, 1), 1),
			graph.NewEdge(node(b, 1), node(c, 1), 1),
		)
	}
	return edges
}

func TestNaiveReservoir_NeverExceedsM(t *testing.T) {
	s, err := mining.NewSession(3, mining.NaiveReservoir, mining.Incremental, 5, mining.WithSeed(1))
	require.NoError(t, err)

	for _, e := range buildTriangleStream(20) {
		_, err := s.AddEdge(e)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.ReservoirLen(), 5)
	}
	assert.Equal(t, 5, s.ReservoirLen(), "the reservoir should have filled to capacity")
}

func TestOptimizedReservoir_NeverExceedsM(t *testing.T) {
	s, err := mining.NewSession(3, mining.OptimizedReservoir, mining.Incremental, 5, mining.WithSeed(2))
	require.NoError(t, err)

	for _, e := range buildTriangleStream(20) {
		_, err := s.AddEdge(e)
		require.NoError(t, err)
		assert.LessOrEqual(t, s.ReservoirLen(), 5)
	}
	assert.Equal(t, 5, s.ReservoirLen())
}

func TestOptimizedReservoirDynamic_CompensatesDeletions(t *testing.T) {
	s, err := mining.NewSession(3, mining.OptimizedReservoir, mining.Dynamic, 5, mining.WithSeed(3))
	require.NoError(t, err)

	edges := buildTriangleStream(20)
	for _, e := range edges {
		_, err := s.AddEdge(e)
		require.NoError(t, err)
	}
	require.Equal(t, 5, s.ReservoirLen())

	// Remove half the stream's edges; the reservoir must never grow
	// past M and must stay internally consistent (no panics/errors).
	for _, e := range edges[:len(edges)/2] {
		if s.GraphIndex().Contains(e) {
			_, err := s.RemoveEdge(e)
			require.NoError(t, err)
		}
		assert.LessOrEqual(t, s.ReservoirLen(), 5)
	}
}

func TestNaiveReservoirDynamic_CompensatesDeletions(t *testing.T) {
	s, err := mining.NewSession(3, mining.NaiveReservoir, mining.Dynamic, 5, mining.WithSeed(4))
	require.NoError(t, err)

	edges := buildTriangleStream(20)
	for _, e := range edges {
		_, err := s.AddEdge(e)
		require.NoError(t, err)
	}

	for _, e := range edges[:len(edges)/2] {
		if s.GraphIndex().Contains(e) {
			_, err := s.RemoveEdge(e)
			require.NoError(t, err)
		}
		assert.LessOrEqual(t, s.ReservoirLen(), 5)
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "exact", mining.Exact.String())
	assert.Equal(t, "naive-reservoir", mining.NaiveReservoir.String())
	assert.Equal(t, "optimized-reservoir", mining.OptimizedReservoir.String())
}

func TestStream_String(t *testing.T) {
	assert.Equal(t, "incremental", mining.Incremental.String())
	assert.Equal(t, "dynamic", mining.Dynamic.String())
}
