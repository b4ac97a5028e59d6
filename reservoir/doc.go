// Package reservoir implements the subgraph reservoir (component D): a
// set of distinct Subgraph values supporting membership tests,
// insertion, removal, a per-vertex index for finding every sampled
// subgraph touching a given vertex pair, and uniform random selection.
//
// Capacity (M, the target sample size) is not enforced here — the
// mining session decides when the reservoir is full and which member
// to evict, exactly as the algorithms this is grounded on manage
// capacity themselves around an unbounded set type. Reservoir only
// guarantees that no operation scans the full membership: Add, Remove,
// Contains and Random cost O(1) expected time, and CommonSubgraphs
// costs time proportional to the smaller of the two vertices' member
// sets, where the naive "materialize every member into a list, then
// pick one" approach would not.
package reservoir
