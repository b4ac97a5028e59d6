// Package skip implements the skip samplers (component E): the
// record-skip distributions that let reservoir-sampling algorithms
// decide, in O(1) amortized time, how many stream records to pass over
// before the next one is considered for the reservoir, without
// drawing a uniform variate per record.
//
// RSState implements Vitter's reservoir-sampling skip (1985): Algorithm
// X for the sequential regime, switching to the acceptance-rejection
// Algorithm Z once the number of records seen exceeds 22 times the
// reservoir size (the threshold Vitter found to be the crossover point
// where Algorithm Z's larger constant overhead is repaid by doing less
// work per record).
//
// RandomPairingSkip implements the Random Pairing deletion-compensation
// skip (Gemulla, Lehner & Haas): Algorithm A for a small pool, the
// acceptance-rejection Algorithm D once the ratio of pool size to
// selection count exceeds 13 (Vitter's original alpha^-1 constant,
// reused here for the same reason).
//
// All arithmetic is carried out in log-space float64, matching the
// reference formulation; the skip counts themselves are always
// non-negative ints.
package skip
