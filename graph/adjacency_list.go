package graph

// Contains reports whether e (up to canonical orientation) is present
// in the index.
//
// Complexity: O(1).
func (idx *Index) Contains(e Edge) bool {
	_, ok := idx.labels[makePairKey(e.U.ID, e.V.ID)]
	return ok
}

// ContainsPair reports whether any edge exists between the two vertex
// IDs, without requiring the caller to know either endpoint's label.
//
// Complexity: O(1).
func (idx *Index) ContainsPair(u, v int) bool {
	_, ok := idx.labels[makePairKey(u, v)]
	return ok
}

// AddEdge inserts e into the adjacency and edge-label maps.
//
// Precondition: e must not already be present (ErrEdgeExists
// otherwise); this is a recoverable condition, not a panic — callers
// (mining.Session) treat it as "reject duplicate, no state change".
//
// Complexity: O(1) amortized.
func (idx *Index) AddEdge(e Edge) error {
	if idx.Contains(e) {
		return ErrEdgeExists
	}

	idx.insertNeighbor(e.U, e.V)
	idx.insertNeighbor(e.V, e.U)
	idx.labels[makePairKey(e.U.ID, e.V.ID)] = e.Label
	idx.nodeByID[e.U.ID] = e.U
	idx.nodeByID[e.V.ID] = e.V

	return nil
}

// RemoveEdge deletes e from the adjacency and edge-label maps.
//
// Precondition: e must be present (ErrEdgeNotFound otherwise).
//
// Complexity: O(1).
func (idx *Index) RemoveEdge(e Edge) error {
	if !idx.Contains(e) {
		return ErrEdgeNotFound
	}

	idx.removeNeighbor(e.U, e.V)
	idx.removeNeighbor(e.V, e.U)
	delete(idx.labels, makePairKey(e.U.ID, e.V.ID))

	return nil
}

// insertNeighbor records v as a neighbor of u, lazily allocating u's
// neighbor set.
func (idx *Index) insertNeighbor(u, v Node) {
	nbrs, ok := idx.adjacency[u]
	if !ok {
		nbrs = make(map[Node]struct{})
		idx.adjacency[u] = nbrs
	}
	nbrs[v] = struct{}{}
}

// removeNeighbor drops v from u's neighbor set, reclaiming the set
// itself once empty so isolated vertices do not leak map entries.
func (idx *Index) removeNeighbor(u, v Node) {
	nbrs, ok := idx.adjacency[u]
	if !ok {
		return
	}
	delete(nbrs, v)
	if len(nbrs) == 0 {
		delete(idx.adjacency, u)
	}
}

// Neighbors returns the adjacency set of n (empty, non-nil, if n is
// unknown). The returned map is owned by the caller to read but must
// not be mutated — it is the Index's live set, not a copy. The
// enumerate package only reads it: its symmetric-difference,
// intersection and difference helpers build new sets.
//
// Complexity: O(1) to obtain the set reference.
func (idx *Index) Neighbors(n Node) map[Node]struct{} {
	nbrs, ok := idx.adjacency[n]
	if !ok {
		return map[Node]struct{}{}
	}
	return nbrs
}

// NeighborsByID resolves a bare vertex ID (no label known) to its
// current Node and neighbor set. Returns ok=false if the ID has never
// appeared in any edge.
func (idx *Index) NeighborsByID(id int) (Node, map[Node]struct{}, bool) {
	n, ok := idx.nodeByID[id]
	if !ok {
		return Node{}, nil, false
	}
	return n, idx.Neighbors(n), true
}

// NodeByID resolves a bare vertex ID to its current labeled Node.
// Returns ok=false if the ID has never appeared in any edge.
func (idx *Index) NodeByID(id int) (Node, bool) {
	n, ok := idx.nodeByID[id]
	return n, ok
}

// EdgeLabel returns the label of the edge between u and v (by ID) and
// whether it exists.
func (idx *Index) EdgeLabel(u, v int) (int, bool) {
	l, ok := idx.labels[makePairKey(u, v)]
	return l, ok
}
