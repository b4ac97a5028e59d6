package randomgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/randomgraph"
)

func TestGenerate_RejectsInvalidParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := randomgraph.Generate(rng, 0, 0.5, 2, 2)
	assert.ErrorIs(t, err, randomgraph.ErrTooFewVertices)

	_, err = randomgraph.Generate(rng, 5, 1.5, 2, 2)
	assert.ErrorIs(t, err, randomgraph.ErrInvalidProbability)

	_, err = randomgraph.Generate(rng, 5, 0.5, 0, 2)
	assert.ErrorIs(t, err, randomgraph.ErrInvalidLabelCount)
}

func TestGenerate_ProducesLabeledGraphWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	idx, err := randomgraph.Generate(rng, 20, 0.3, 3, 2)
	require.NoError(t, err)

	edges := idx.AllEdges()
	for _, e := range edges {
		assert.NotEqual(t, e.U.ID, e.V.ID)
		assert.GreaterOrEqual(t, e.U.Label, 1)
		assert.LessOrEqual(t, e.U.Label, 3)
		assert.GreaterOrEqual(t, e.Label, 1)
		assert.LessOrEqual(t, e.Label, 2)
	}
}

func TestGenerate_ZeroProbabilityProducesNoEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	idx, err := randomgraph.Generate(rng, 10, 0, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, idx.AllEdges())
}

func TestGenerate_FullProbabilityProducesCompleteGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 6
	idx, err := randomgraph.Generate(rng, n, 1, 2, 2)
	require.NoError(t, err)
	assert.Len(t, idx.AllEdges(), n*(n-1)/2)
}
