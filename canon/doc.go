// Package canon implements the canonical labeler (component C): it
// maps an induced Subgraph to a string label such that two subgraphs
// receive the same label iff they are isomorphic (respecting vertex
// and edge labels), and distinct labels otherwise.
//
// The algorithm partitions vertices by (degree, label), orders
// partitions by (degree, size, label) descending, then within each
// partition searches every permutation for the one that maximizes a
// lexicographic string built from the permuted vertex-label sequence
// followed by the flattened strictly-lower-triangular adjacency
// matrix (edge labels, 0 where no edge). Only permutations within a
// partition are tried — the partitioning by degree/label is itself an
// isomorphism invariant, so the partition order never needs
// permuting, only the order within a tied partition.
//
// One encoding choice not present in the algorithm this is grounded
// on: vertex and edge labels here are delimited per position (joined
// with a separator byte that cannot appear in a decimal integer)
// rather than concatenated digit-by-digit, because label values above
// 9 would otherwise make two different label sequences
// indistinguishable by concatenation alone.
package canon
