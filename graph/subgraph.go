package graph

import "sort"

// Subgraph is an induced labeled subgraph: a sorted tuple of Nodes and
// the sorted tuple of SubgraphEdges induced by those nodes. Subgraphs
// are value types — two Subgraphs are equal iff their sorted Nodes and
// Edges slices are element-wise equal, which in Go means comparing
// their Key() values rather than the slices directly (slices are not
// comparable). Use Key() wherever a map key or set membership test is
// needed.
type Subgraph struct {
	Nodes []Node
	Edges []SubgraphEdge
}

// MakeSubgraph builds a canonical Subgraph from an unordered node set
// and an unordered edge list: nodes are sorted by (ID, Label), edges
// are converted to SubgraphEdge and sorted by (U, V, Label).
func MakeSubgraph(nodes []Node, edges []Edge) Subgraph {
	sortedNodes := make([]Node, len(nodes))
	copy(sortedNodes, nodes)
	sort.Slice(sortedNodes, func(i, j int) bool { return sortedNodes[i].Less(sortedNodes[j]) })

	sortedEdges := make([]SubgraphEdge, len(edges))
	for i, e := range edges {
		sortedEdges[i] = e.ToSubgraphEdge()
	}
	sort.Slice(sortedEdges, func(i, j int) bool { return sortedEdges[i].Less(sortedEdges[j]) })

	return Subgraph{Nodes: sortedNodes, Edges: sortedEdges}
}

// WithEdges returns a copy of g whose edge list is edges (already in
// Edge form), reusing g's node list. Used by the mining algorithms to
// build the "before" and "after" forms of a subgraph around a single
// edge event without recomputing the node set.
func (g Subgraph) WithEdges(edges []Edge) Subgraph {
	sortedEdges := make([]SubgraphEdge, len(edges))
	for i, e := range edges {
		sortedEdges[i] = e.ToSubgraphEdge()
	}
	sort.Slice(sortedEdges, func(i, j int) bool { return sortedEdges[i].Less(sortedEdges[j]) })
	return Subgraph{Nodes: g.Nodes, Edges: sortedEdges}
}

// WithAddedEdge returns a copy of g with e appended to its edge list
// (re-sorted), reusing g's node list. Used by the reservoir-based
// mining algorithms to update a subgraph already present in the
// reservoir when an edge event connects two of its vertices, without
// recomputing the full induced edge set.
func (g Subgraph) WithAddedEdge(e Edge) Subgraph {
	edges := make([]SubgraphEdge, len(g.Edges)+1)
	copy(edges, g.Edges)
	edges[len(g.Edges)] = e.ToSubgraphEdge()
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
	return Subgraph{Nodes: g.Nodes, Edges: edges}
}

// WithRemovedEdge returns a copy of g with e's stripped form removed
// from its edge list, reusing g's node list. The inverse of
// WithAddedEdge, used when an edge event disconnects two of a
// reservoir member's vertices.
func (g Subgraph) WithRemovedEdge(e Edge) Subgraph {
	target := e.ToSubgraphEdge()
	edges := make([]SubgraphEdge, 0, len(g.Edges))
	for _, se := range g.Edges {
		if se != target {
			edges = append(edges, se)
		}
	}
	return Subgraph{Nodes: g.Nodes, Edges: edges}
}

// Key returns a comparable representation of g suitable for use as a
// Go map key (equal Subgraphs always produce equal Keys).
func (g Subgraph) Key() SubgraphKey {
	var k SubgraphKey
	k.nodes = keyOf(nodeSliceToSet(g.Nodes))
	buf := make([]byte, 0, len(g.Edges)*12)
	for _, e := range g.Edges {
		buf = appendInt(buf, e.U)
		buf = append(buf, ',')
		buf = appendInt(buf, e.V)
		buf = append(buf, ',')
		buf = appendInt(buf, e.Label)
		buf = append(buf, ';')
	}
	k.edges = string(buf)
	return k
}

// SubgraphKey is the comparable (==) form of a Subgraph, usable as a
// map key directly.
type SubgraphKey struct {
	nodes nodeSetKey
	edges string
}

func nodeSliceToSet(nodes []Node) map[Node]struct{} {
	out := make(map[Node]struct{}, len(nodes))
	for _, n := range nodes {
		out[n] = struct{}{}
	}
	return out
}

// NodeIDSet is the bare vertex-ID set used by the enumerator for a
// candidate vertex set (keyed just by ID, ignoring label, since during
// enumeration only IDs are known until resolved against the Index).
type NodeIDSet map[int]struct{}

// Key returns a comparable, order-independent representation of an ID
// set, used by enumerate to dedupe candidate vertex sets the way the
// original frozenset(...) values did.
func (s NodeIDSet) Key() string {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	buf := make([]byte, 0, len(ids)*8)
	for _, id := range ids {
		buf = appendInt(buf, id)
		buf = append(buf, ',')
	}
	return string(buf)
}
