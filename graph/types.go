// Package graph provides the streaming graph index that backs subgraph
// pattern mining: labeled vertices, labeled edges, and the adjacency
// queries the enumerator and mining session need to react to a single
// edge event without rescanning the graph.
//
// Node and Edge are value types (comparable with ==), matching the data
// model: a Node is (ID, Label); an Edge is a canonicalized
// (U, ULabel, V, VLabel, Label) tuple with U.ID < V.ID always. Index is
// the mutable adjacency structure: a map from Node to its neighbor set,
// plus a map keyed on the canonical (u.ID, v.ID) pair giving the edge
// label. Both maps are kept symmetric by construction.
//
// Errors:
//
//	ErrEdgeExists    - AddEdge on an edge already present.
//	ErrEdgeNotFound  - RemoveEdge on an edge not present.
package graph

import "errors"

// Sentinel errors for graph index mutation.
var (
	// ErrEdgeExists indicates AddEdge was called with an edge already present.
	ErrEdgeExists = errors.New("graph: edge already present")

	// ErrEdgeNotFound indicates RemoveEdge was called with an edge not present.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Node is a vertex identified by an integer ID and carrying an integer
// label drawn from a small alphabet. Nodes are compared and hashed by
// both fields, so two Nodes with the same ID but different labels are
// distinct keys — callers must keep a single label per ID consistent
// themselves (the stream format guarantees this).
type Node struct {
	ID    int
	Label int
}

// Less orders nodes by ID, then by Label. Used to produce the sorted
// node tuple carried by Subgraph.
func (n Node) Less(o Node) bool {
	if n.ID != o.ID {
		return n.ID < o.ID
	}
	return n.Label < o.Label
}

// Edge is a canonicalized edge tuple: U.ID is always < V.ID. Edge is a
// value type with a total order (lexicographic on U, then V, then
// Label), matching the data model's total-order requirement.
type Edge struct {
	U     Node
	V     Node
	Label int
}

// NewEdge builds a canonical Edge from two endpoints and a label,
// swapping U/V if needed so that U.ID < V.ID always holds.
//
// NewEdge panics if u.ID == v.ID: self-loops are outside the data model
// (the stream format never emits them and the enumerator never expects
// them).
func NewEdge(u Node, v Node, label int) Edge {
	if u.ID == v.ID {
		panic("graph: self-loop edges are not supported")
	}
	if v.ID < u.ID {
		u, v = v, u
	}
	return Edge{U: u, V: v, Label: label}
}

// Less orders Edges lexicographically on (U, V, Label).
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U.Less(o.U)
	}
	if e.V != o.V {
		return e.V.Less(o.V)
	}
	return e.Label < o.Label
}

// SubgraphEdge is the stripped form of Edge used inside Subgraph
// descriptors: vertex labels are carried by the Subgraph's node list,
// so only the endpoint IDs and the edge label remain.
type SubgraphEdge struct {
	U     int
	V     int
	Label int
}

// Less orders SubgraphEdges lexicographically on (U, V, Label).
func (e SubgraphEdge) Less(o SubgraphEdge) bool {
	if e.U != o.U {
		return e.U < o.U
	}
	if e.V != o.V {
		return e.V < o.V
	}
	return e.Label < o.Label
}

// ToSubgraphEdge strips vertex labels from an Edge.
func (e Edge) ToSubgraphEdge() SubgraphEdge {
	return SubgraphEdge{U: e.U.ID, V: e.V.ID, Label: e.Label}
}

// pairKey canonicalizes two vertex IDs into the key used by Index's
// edge-label map: (min(a,b), max(a,b)).
type pairKey struct {
	a, b int
}

func makePairKey(a, b int) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Index is the streaming adjacency index (component A of the mining
// core). It supports incremental edge insertion/deletion and the
// neighborhood queries the enumerator needs, all in O(1) or O(degree)
// time with no full-graph rescans.
//
// Invariants (enforced by every mutator):
//   - adjacency is symmetric: v ∈ adjacency[u] iff u ∈ adjacency[v].
//   - a key is present in labels iff the corresponding neighbor
//     relation exists.
//   - neighbor sets never contain the node itself.
type Index struct {
	adjacency map[Node]map[Node]struct{}
	labels    map[pairKey]int
	// nodeByID resolves a bare vertex ID back to its labeled Node, so
	// neighbor-set operations keyed only by ID can recover the Node value
	// the rest of the core expects.
	nodeByID map[int]Node
}

// NewIndex returns an empty streaming graph index.
func NewIndex() *Index {
	return &Index{
		adjacency: make(map[Node]map[Node]struct{}),
		labels:    make(map[pairKey]int),
		nodeByID:  make(map[int]Node),
	}
}
