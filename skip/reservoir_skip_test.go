package skip_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subgraphfsm/skip"
)

// With a deterministic seed and M=100, skips must stay non-negative and
// the state must keep producing valid skip counts across the X-to-Z
// crossover at t = 22*M.
func TestRSState_ApplyAcrossXToZCrossover(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	st := skip.NewRSState(rng, 100)

	n := 100
	for n < 2200+50 {
		z := st.Apply(rng, n)
		assert.GreaterOrEqual(t, z, 0, "skip counts are never negative")
		n += z + 1
	}
}

func TestRSState_ApplyIsDeterministicUnderFixedSeed(t *testing.T) {
	run := func() []int {
		rng := rand.New(rand.NewSource(123))
		st := skip.NewRSState(rng, 50)
		n := 50
		var skips []int
		for i := 0; i < 30; i++ {
			z := st.Apply(rng, n)
			skips = append(skips, z)
			n += z + 1
		}
		return skips
	}

	assert.Equal(t, run(), run(), "the same seed must reproduce the same skip sequence")
}
