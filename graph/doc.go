// Package graph implements the streaming graph index (component A of
// the mining core): a labeled adjacency structure supporting edge
// existence tests, neighbor sets, induced-edge retrieval and the
// two-hop/n-hop neighborhood queries that the subgraph enumerator
// (package enumerate) needs to react to a single edge event.
//
// Why a separate Index from a general-purpose graph library?
//
//   - The mining core never needs directed edges, weights, multi-edges,
//     or self-loops — only a plain undirected labeled simple graph.
//   - The core runs strictly single-threaded (one mutator, no
//     concurrent calls), so Index carries no locks.
//   - Every mutation and query below is O(1) or O(degree); there is no
//     operation that rescans the whole edge set.
//
// Core Methods:
//
//	NewIndex() *Index
//	Contains(e Edge) bool
//	AddEdge(e Edge) error                 // ErrEdgeExists if already present
//	RemoveEdge(e Edge) error               // ErrEdgeNotFound if absent
//	Neighbors(n Node) map[Node]struct{}
//	TwoHopNeighborhood(source Node, through, exclude map[Node]struct{}) map[Node]map[Node]struct{}
//	InducedEdges(nodes []Node) []Edge
//	NHopNeighborhood(source Node, n int) map[nodeSetKey]map[Node]struct{}  // generic fallback only
package graph
