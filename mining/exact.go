package mining

import "github.com/katalvlaran/subgraphfsm/graph"

// exactAdd implements exact exhaustive counting on edge insertion: a
// candidate vertex set newly connected by e gets its freshly induced
// subgraph (including e) added to the pattern counter; a candidate
// already connected (via both endpoints of e) gets its existing
// induced subgraph's count decremented and the post-e version
// incremented.
func (s *Session) exactAdd(e graph.Edge) (bool, error) {
	if s.idx.Contains(e) {
		s.numCandidates, s.numProcessed = 0, 0
		return false, nil
	}

	additions, replacements := s.allSubgraphs(s.idx, e.U, e.V)
	s.numCandidates = len(additions) + len(replacements)
	s.numProcessed = 0

	for _, cand := range additions {
		nodes := resolveNodes(s.idx, e.U, e.V, cand)
		edges := s.idx.InducedEdges(nodes)
		sg := graph.MakeSubgraph(nodes, appendEdge(edges, e))
		s.recordPattern(sg, 1)
		s.numProcessed++
	}

	for _, cand := range replacements {
		nodes := resolveNodes(s.idx, e.U, e.V, cand)
		edges := s.idx.InducedEdges(nodes)

		existing := graph.MakeSubgraph(nodes, edges)
		s.recordPattern(existing, -1)

		updated := graph.MakeSubgraph(nodes, appendEdge(edges, e))
		s.recordPattern(updated, 1)
		s.numProcessed++
	}

	if err := s.idx.AddEdge(e); err != nil {
		return false, err
	}

	return true, nil
}

// exactRemove implements exact exhaustive counting on edge removal:
// the graph is mutated first so the enumerator sees the edge-free
// state, then a candidate that is no longer connected has its
// edge-included subgraph removed, and a candidate still connected has
// its edge-included form removed and edge-free form re-added.
func (s *Session) exactRemove(e graph.Edge) (bool, error) {
	if !s.idx.Contains(e) {
		s.numCandidates, s.numProcessed = 0, 0
		return false, nil
	}
	if err := s.idx.RemoveEdge(e); err != nil {
		return false, err
	}

	removals, replacements := s.allSubgraphs(s.idx, e.U, e.V)
	s.numCandidates = len(removals) + len(replacements)
	s.numProcessed = 0

	for _, cand := range removals {
		nodes := resolveNodes(s.idx, e.U, e.V, cand)
		edges := s.idx.InducedEdges(nodes)
		sg := graph.MakeSubgraph(nodes, appendEdge(edges, e))
		s.recordPattern(sg, -1)
		s.numProcessed++
	}

	for _, cand := range replacements {
		nodes := resolveNodes(s.idx, e.U, e.V, cand)
		edges := s.idx.InducedEdges(nodes)

		existing := graph.MakeSubgraph(nodes, appendEdge(edges, e))
		s.recordPattern(existing, -1)

		updated := graph.MakeSubgraph(nodes, edges)
		s.recordPattern(updated, 1)
		s.numProcessed++
	}

	return true, nil
}
