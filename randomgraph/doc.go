// Package randomgraph generates Erdős–Rényi random graphs with
// uniformly random vertex and edge labels, for use as synthetic
// streams to drive the mining session or to compute accuracy figures
// against a known label alphabet size.
//
// Generation is split into two stages, separating topology from
// labeling: ErdosRenyi samples the
// unlabeled edge set (each of the n*(n-1)/2 undirected pairs included
// independently with probability p), then LabelGraph assigns each
// vertex one of L labels and each edge one of Q labels, uniformly at
// random, producing a ready-to-stream graph.Index.
package randomgraph
