package skip

import (
	"math"
	"math/rand"
)

// thresholdFactor is Vitter's crossover constant: Algorithm Z is used
// once the number of records processed exceeds thresholdFactor times
// the reservoir size.
const thresholdFactor = 22.0

// RSState carries the running state (w) of Vitter's reservoir-sampling
// skip distribution across successive Apply calls for one reservoir of
// fixed size n.
type RSState struct {
	n float64
	w float64
}

// NewRSState initializes a skip state for a reservoir of size n,
// drawing the first random variable w.
func NewRSState(rng *rand.Rand, n int) *RSState {
	nf := float64(n)
	return &RSState{
		n: nf,
		w: math.Exp(-math.Log(rng.Float64()) / nf),
	}
}

// Apply returns the number of records to skip before the next record
// is considered for the reservoir, given that t records have been
// processed so far. It dispatches to Algorithm X while t stays within
// Vitter's threshold and to Algorithm Z beyond it, carrying the
// acceptance-rejection state w forward between calls.
func (s *RSState) Apply(rng *rand.Rand, t int) int {
	if float64(t) > thresholdFactor*s.n {
		skip, w := algorithmZ(rng, t, s.n, s.w)
		s.w = w
		return skip
	}
	return algorithmX(rng, t, s.n)
}

// algorithmX is Vitter's Algorithm X: exact, used while the pool (t)
// is not yet much larger than the reservoir (n).
func algorithmX(rng *rand.Rand, t int, n float64) int {
	v := rng.Float64()
	s := 0
	tf := float64(t + 1)
	quot := (tf - n) / tf

	for quot > v {
		s++
		tf++
		quot *= (tf - n) / tf
	}

	return s
}

// algorithmZ is Vitter's Algorithm Z: acceptance-rejection sampling of
// the skip distribution, amortized O(1) once t grows large relative to
// n (where Algorithm X would cost O(t-n) per call).
func algorithmZ(rng *rand.Rand, t int, n float64, w float64) (int, float64) {
	tf := float64(t)
	term := tf - n + 1
	W := w
	var S int

	for {
		u := rng.Float64()
		x := tf * (W - 1)
		S = int(x)

		tmp := (tf + 1) / term
		lhs := math.Exp(math.Log(((u*tmp*tmp)*(term+float64(S)))/(tf+x)) / n)
		rhs := (((tf+x)/(term+float64(S))) * term) / tf

		if lhs <= rhs {
			W = rhs / lhs
			break
		}

		y := (((u*(tf+1))/term)*(tf+float64(S)+1))/(tf + x)

		var denom float64
		var numerLim int
		if n < float64(S) {
			denom = tf
			numerLim = int(term) + S
		} else {
			denom = tf - n + float64(S)
			numerLim = t + 1
		}

		for numer := t + S; numer >= numerLim; numer-- {
			y = y * float64(numer) / denom
			denom--
		}

		W = math.Exp(-math.Log(rng.Float64()) / n)
		if math.Exp(math.Log(y)/n) <= (tf+x)/tf {
			break
		}
	}

	return S, W
}
