package accuracy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/subgraphfsm/accuracy"
)

func TestCalculateTk_K3SingleLabel(t *testing.T) {
	// k=3, one vertex label, one edge label: the only connected shapes
	// on 3 unlabeled vertices are the wedge and the triangle, and with
	// a single label every instance of each collapses to one pattern.
	tk := accuracy.CalculateTk(3, 1, 1)
	assert.Equal(t, 2, tk)
}

func TestCalculateTk_GrowsWithLabelAlphabets(t *testing.T) {
	small := accuracy.CalculateTk(3, 1, 1)
	large := accuracy.CalculateTk(3, 2, 2)
	assert.Greater(t, large, small, "richer label alphabets must never shrink the pattern space")
}

func TestCalculateM_MonotonicInTk(t *testing.T) {
	small := accuracy.CalculateM(10, 0.05, 0.1)
	large := accuracy.CalculateM(1000, 0.05, 0.1)
	assert.Greater(t, large, small, "a larger pattern space requires a larger reservoir for the same guarantees")
	assert.Greater(t, small, 0)
}
