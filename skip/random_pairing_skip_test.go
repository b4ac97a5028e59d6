package skip_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subgraphfsm/skip"
)

func TestRandomPairingSkip_ZeroCreditSkipsEverything(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, 10, skip.RandomPairingSkip(rng, 0, 10))
}

func TestRandomPairingSkip_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for n := 1; n <= 20; n++ {
		for d := n; d <= n+200; d += 37 {
			z := skip.RandomPairingSkip(rng, n, d)
			assert.GreaterOrEqual(t, z, 0)
			assert.LessOrEqual(t, z, d)
		}
	}
}

// AlgorithmA (small pool) and AlgorithmD (large pool, n*13 < N) must
// both be reachable and well-behaved; this sweeps past the alpha^-1=13
// crossover.
func TestRandomPairingSkip_CrossesAlgorithmThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	small := skip.RandomPairingSkip(rng, 5, 40) // n*13=65 > N=40: Algorithm A
	assert.GreaterOrEqual(t, small, 0)

	large := skip.RandomPairingSkip(rng, 5, 1000) // n*13=65 < N=1000: Algorithm D
	assert.GreaterOrEqual(t, large, 0)
}
