package mining

import (
	"github.com/katalvlaran/subgraphfsm/graph"
	"github.com/katalvlaran/subgraphfsm/skip"
)

// admitOptimized places sg into the reservoir, evicting a uniformly
// random existing member first if already full. Unlike admitCapacity,
// it performs no probabilistic accept/reject: optimized admission has
// already decided, via skip counting, that sg is one of the chosen
// candidates, so placement is unconditional.
func (s *Session) admitOptimized(sg graph.Subgraph) {
	if s.reservoir.IsFull(s.m) {
		victim := s.reservoir.Random(s.rng)
		s.reservoir.Remove(victim)
		s.recordPattern(victim, -1)
	}
	s.reservoir.Add(sg)
	s.recordPattern(sg, 1)
}

// optimizedIncrementalAdd replaces naiveIncrementalAdd's one-RNG-call-
// per-candidate admission with Vitter's skip counting: it decides how
// many of this event's W candidates to admit (I) without drawing once
// per candidate, then picks I of the W uniformly at random.
func (s *Session) optimizedIncrementalAdd(e graph.Edge) (bool, error) {
	if s.idx.Contains(e) {
		return false, nil
	}
	u, v := e.U, e.V

	s.growCommonSubgraphs(u, v, e)

	candidates := s.newSubgraphs(s.idx, u, v)
	w := len(candidates)
	s.numCandidates = w
	i := 0

	if !s.reservoir.IsFull(s.m) {
		i = minInt(w, s.m-s.reservoir.Len())
		s.skipSurplus = i
		s.n += i
	}

	for s.skipSurplus < w {
		i++
		z := s.rsState.Apply(s.rng, s.n)
		s.n += z + 1
		s.skipSurplus += z + 1
	}
	s.skipSurplus -= w

	s.admitChosen(u, v, e, candidates, i)
	s.numProcessed = minInt(i, w)

	return true, s.idx.AddEdge(e)
}

// optimizedDynamicAdd composes two compensation mechanisms before
// falling through to skip counting: Random Pairing first consumes any
// outstanding c1/c2 credit from prior removals, then Vitter skip
// counting handles whatever candidates remain.
func (s *Session) optimizedDynamicAdd(e graph.Edge) (bool, error) {
	if s.idx.Contains(e) {
		return false, nil
	}
	u, v := e.U, e.V

	s.growCommonSubgraphs(u, v, e)

	candidates := s.newSubgraphs(s.idx, u, v)
	w := len(candidates)
	s.numCandidates = w
	i := 0

	if !s.reservoir.IsFull(s.m) && s.c1+s.c2 == 0 {
		i = minInt(w, s.m-s.reservoir.Len())
		s.skipSurplus = i
		s.n += i
	}

	sumRP := 0
	for s.c1+s.c2 > 0 && sumRP < w {
		d := s.c1 + s.c2
		z := skip.RandomPairingSkip(s.rng, s.c1, d)

		picked := 0
		if sumRP+z < w {
			if s.c1 > 0 {
				picked = 1
			}
		} else {
			z = w - sumRP
		}

		i += picked
		s.c1 -= picked
		s.c2 -= z
		sumRP += z + picked
	}

	remaining := w - sumRP
	for s.skipSurplus < remaining {
		i++
		z := s.rsState.Apply(s.rng, s.n)
		s.n += z + 1
		s.skipSurplus += z + 1
	}
	s.skipSurplus -= remaining

	s.admitChosen(u, v, e, candidates, i)
	s.numProcessed = minInt(i, w)

	return true, s.idx.AddEdge(e)
}

// admitChosen resolves i uniformly-chosen candidates out of the full
// candidate list and admits each into the reservoir. Shared tail of
// both optimized add paths once the skip/compensation bookkeeping has
// settled on how many candidates to take.
func (s *Session) admitChosen(u, v graph.Node, e graph.Edge, candidates []graph.NodeIDSet, i int) {
	for _, idx := range sampleIndices(s.rng, len(candidates), i) {
		cand := candidates[idx]
		nodes := resolveNodes(s.idx, u, v, cand)
		edges := s.idx.InducedEdges(nodes)
		sg := graph.MakeSubgraph(nodes, appendEdge(edges, e))
		s.admitOptimized(sg)
	}
}

// optimizedDynamicRemove shares naiveDynamicRemove's reservoir
// bookkeeping (eviction of disconnected members, edge-stripping of
// still-connected ones); the two modes differ only in how
// c1/c2 subsequently drive admission on the next insertion.
func (s *Session) optimizedDynamicRemove(e graph.Edge) (bool, error) {
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
