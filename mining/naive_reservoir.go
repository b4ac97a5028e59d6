package mining

import "github.com/katalvlaran/subgraphfsm/graph"

// naiveIncrementalAdd runs classic per-candidate reservoir sampling:
// every newly formed candidate subgraph draws its own admission
// decision (one RNG call each), independent of any other candidate
// from the same event.
func (s *Session) naiveIncrementalAdd(e graph.Edge) (bool, error) {
	if s.idx.Contains(e) {
		return false, nil
	}
	u, v := e.U, e.V

	s.growCommonSubgraphs(u, v, e)

	candidates := s.newSubgraphs(s.idx, u, v)
	s.numCandidates = len(candidates)
	s.numProcessed = 0

	for _, cand := range candidates {
		nodes := resolveNodes(s.idx, u, v, cand)
		edges := s.idx.InducedEdges(nodes)
		sg := graph.MakeSubgraph(nodes, appendEdge(edges, e))

		s.n++
		if s.admitCapacity(sg) {
			s.numProcessed++
		}
	}

	return true, s.idx.AddEdge(e)
}

// naiveDynamicAdd is naiveIncrementalAdd's dynamic-stream counterpart:
// admission of each new candidate is first gated by Random Pairing
// compensation (c1/c2) built up by prior removals, then falls through
// to ordinary reservoir admission once compensation is settled.
func (s *Session) naiveDynamicAdd(e graph.Edge) (bool, error) {
	if s.idx.Contains(e) {
		return false, nil
	}
	u, v := e.U, e.V

	s.growCommonSubgraphs(u, v, e)

	candidates := s.newSubgraphs(s.idx, u, v)
	s.numCandidates = len(candidates)
	s.numProcessed = 0

	for _, cand := range candidates {
		nodes := resolveNodes(s.idx, u, v, cand)
		edges := s.idx.InducedEdges(nodes)
		sg := graph.MakeSubgraph(nodes, appendEdge(edges, e))

		s.n++
		if s.admitNaiveCompensated(sg) {
			s.numProcessed++
		}
	}

	return true, s.idx.AddEdge(e)
}

// admitNaiveCompensated decides, via Random Pairing bookkeeping,
// whether the current candidate consumes one of the outstanding
// compensation credits (c1) or one of the outstanding compensation
// debits (c2); only a credit draw proceeds to ordinary admission.
func (s *Session) admitNaiveCompensated(sg graph.Subgraph) bool {
	if s.c1+s.c2 == 0 {
		return s.admitCapacity(sg)
	}

	if s.rng.Float64() < float64(s.c1)/float64(s.c1+s.c2) {
		s.c1--
		return s.admitCapacity(sg)
	}

	s.c2--
	return false
}

// naiveDynamicRemove mirrors the exact-counting removal path but
// against reservoir members: disconnecting candidates are evicted
// outright, still-connected members lose e from their induced edge
// set, and the resulting under/over-sampling is recorded into c1/c2
// for naiveDynamicAdd to compensate against on future insertions.
func (s *Session) naiveDynamicRemove(e graph.Edge) (bool, error) {
	if !s.idx.Contains(e) {
		return false, nil
	}
	if err := s.idx.RemoveEdge(e); err != nil {
		return false, err
	}
	u, v := e.U, e.V

	removals := s.newSubgraphs(s.idx, u, v)
	s.numCandidates = len(removals)
	compensate := s.reservoir.IsFull(s.m) || s.c1+s.c2 > 0

	removalsFromSample := s.shrinkCommonSubgraphs(u, v, e, removals)
	s.numProcessed = removalsFromSample

	if compensate {
		d := len(removals)
		s.c1 += removalsFromSample
		s.c2 += d - removalsFromSample
	}
	s.n -= len(removals)

	return true, nil
}
