package mining

import (
	"math/rand"

	"github.com/katalvlaran/subgraphfsm/graph"
)

// growCommonSubgraphs updates every reservoir member whose vertex set
// already contains both endpoints of e: e newly connects them, so the
// member's induced edge set gains e. Shared by every reservoir-based
// add path (naive/optimized, incremental/dynamic).
func (s *Session) growCommonSubgraphs(u, v graph.Node, e graph.Edge) {
	for _, old := range s.reservoir.CommonSubgraphs(u.ID, v.ID) {
		updated := old.WithAddedEdge(e)
		s.reservoir.Replace(old, updated)
		s.recordPattern(old, -1)
		s.recordPattern(updated, 1)
	}
}

// admitCapacity inserts sg into the reservoir, evicting a uniformly
// random existing member with probability m/n when already full.
// Callers are responsible for having already accounted sg into s.n.
func (s *Session) admitCapacity(sg graph.Subgraph) bool {
	if !s.reservoir.IsFull(s.m) {
		s.reservoir.Add(sg)
		s.recordPattern(sg, 1)
		return true
	}

	if s.rng.Float64() >= float64(s.m)/float64(s.n) {
		return false
	}

	victim := s.reservoir.Random(s.rng)
	s.reservoir.Remove(victim)
	s.recordPattern(victim, -1)

	s.reservoir.Add(sg)
	s.recordPattern(sg, 1)
	return true
}

// nodeIDSetFromNodes extracts the bare vertex-ID set of a resolved
// node list, for comparison against the ID sets an enumerator returns.
func nodeIDSetFromNodes(nodes []graph.Node) graph.NodeIDSet {
	out := make(graph.NodeIDSet, len(nodes))
	for _, n := range nodes {
		out[n.ID] = struct{}{}
	}
	return out
}

// shrinkCommonSubgraphs updates every reservoir member containing both
// u and v after e has been removed from the graph: a member whose
// vertex set matches one of the disconnection candidates is evicted
// outright; any other member loses e from its induced edge set. It
// reports how many members were evicted outright (removalsFromSample),
// needed by the dynamic compensation bookkeeping.
func (s *Session) shrinkCommonSubgraphs(u, v graph.Node, e graph.Edge, removals []graph.NodeIDSet) int {
	removalSet := make(map[string]struct{}, len(removals))
	for _, r := range removals {
		removalSet[r.Key()] = struct{}{}
	}

	removalsFromSample := 0
	for _, old := range s.reservoir.CommonSubgraphs(u.ID, v.ID) {
		if _, ok := removalSet[nodeIDSetFromNodes(old.Nodes).Key()]; ok {
			s.reservoir.Remove(old)
			s.recordPattern(old, -1)
			removalsFromSample++
			continue
		}

		updated := old.WithRemovedEdge(e)
		s.reservoir.Replace(old, updated)
		s.recordPattern(old, -1)
		s.recordPattern(updated, 1)
	}
	return removalsFromSample
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// sampleIndices picks i distinct indices out of [0, w) uniformly at
// random, or all w indices when i >= w.
func sampleIndices(rng *rand.Rand, w, i int) []int {
	if i >= w {
		out := make([]int, w)
		for k := range out {
			out[k] = k
		}
		return out
	}
	if i <= 0 {
		return nil
	}
	return rng.Perm(w)[:i]
}
