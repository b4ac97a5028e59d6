package skip

import (
	"math"
	"math/rand"
)

// alphaInv is Vitter's alpha^-1 threshold reused by Random Pairing:
// below it, Algorithm A's linear scan is cheaper than Algorithm D's
// acceptance-rejection overhead.
const alphaInv = 13

func drawVPrime(rng *rand.Rand, coefficient float64) float64 {
	return math.Exp(math.Log(rng.Float64()) * coefficient)
}

// RandomPairingSkip returns the number of stream records to skip
// before the next deletion-compensation replacement, given that n
// replacements remain to be drawn out of a pool of N records. It
// mirrors the Random Pairing compensation scheme's skip_records: exact
// for n==1, Algorithm A for a small pool-to-selection ratio, and the
// acceptance-rejection Algorithm D beyond alphaInv.
func RandomPairingSkip(rng *rand.Rand, n, N int) int {
	if n <= 0 {
		return N
	}

	vPrime := drawVPrime(rng, 1/float64(n))

	switch {
	case n == 1:
		return int(float64(N) * vPrime)
	case n*alphaInv < N:
		return algorithmD(rng, n, N, vPrime)
	default:
		return algorithmA(rng, n, N)
	}
}

// algorithmA is Vitter's Algorithm A adapted to Random Pairing's
// skip-selection framing: exact, linear in the skip count.
func algorithmA(rng *rand.Rand, n, N int) int {
	top := float64(N - n)
	nReal := float64(N)
	v := rng.Float64()
	s := 0

	quot := float64(N-n) / nReal
	for quot > v {
		s++
		top--
		nReal--
		quot *= top / nReal
	}

	return s
}

// algorithmD is Vitter's Algorithm D adapted to Random Pairing:
// acceptance-rejection sampling of the skip distribution, amortized
// O(1) once N grows large relative to n.
func algorithmD(rng *rand.Rand, n, N int, vPrime float64) int {
	nInv := 1 / float64(n)
	nMin1Inv := 1 / float64(n-1)
	qu1 := float64(N - n + 1)

	var S int
	for {
		var x float64
		for {
			x = float64(N) * (1 - vPrime)
			S = int(x)
			if float64(S) < qu1 {
				break
			}
			vPrime = drawVPrime(rng, nInv)
		}

		u := rng.Float64()
		y1 := math.Exp(math.Log(u*float64(N)/qu1) * nMin1Inv)
		vPrime = y1 * (1 - x/float64(N)) * (qu1 / (qu1 - float64(S)))

		if vPrime <= 1 {
			break
		}

		y2 := 1.0
		top := float64(N - 1)
		var bottom, limit float64
		if n-1 > S {
			bottom = float64(N - n)
			limit = float64(N - S)
		} else {
			bottom = float64(N - S - 1)
			limit = qu1
		}

		for t := float64(N - 1); t >= limit; t-- {
			y2 *= top / bottom
			top--
			bottom--
		}

		if float64(N)/(float64(N)-x) >= y1*math.Exp(math.Log(y2)*nMin1Inv) {
			vPrime = drawVPrime(rng, nMin1Inv)
			break
		}
		vPrime = drawVPrime(rng, nInv)
	}

	return S
}
