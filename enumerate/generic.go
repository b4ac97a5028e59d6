package enumerate

import "github.com/katalvlaran/subgraphfsm/graph"

// disjoint reports whether a and b share no node.
func disjoint(a, b map[graph.Node]struct{}) bool {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for n := range small {
		if _, ok := big[n]; ok {
			return false
		}
	}
	return true
}

func nodeSetToIDSet(nodes map[graph.Node]struct{}) graph.NodeIDSet {
	s := make(graph.NodeIDSet, len(nodes))
	for n := range nodes {
		s[n.ID] = struct{}{}
	}
	return s
}

// flattenValues unions every vertex set in an n-hop-neighborhood result
// (keyed by graph's unexported set key, hence the type parameter) into
// one node set.
func flattenValues[K comparable](sets map[K]map[graph.Node]struct{}) map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{})
	for _, s := range sets {
		for n := range s {
			out[n] = struct{}{}
		}
	}
	return out
}

// NewSubgraphsGeneric returns every k-vertex set newly connected by an
// edge event between u and v, for arbitrary k >= 3, by combining every
// disjoint pair of an h-hop neighborhood of u and a (k-2-h)-hop
// neighborhood of v (h ranging over 0..k-2). This is the brute-force
// fallback the k=3/k=4 closed forms exist to avoid; it is never used on
// the fast path.
func NewSubgraphsGeneric(idx *graph.Index, u, v graph.Node, k int) []graph.NodeIDSet {
	additions, _ := AllSubgraphsGeneric(idx, u, v, k)
	return additions
}

// AllSubgraphsGeneric is the generic-k analogue of AllSubgraphsK3 /
// AllSubgraphsK4: for each split k-2 = h + j, it unions every disjoint
// pair of an h-hop neighborhood of u and a j-hop neighborhood of v,
// classifying the union as a replacement if it overlaps the "next hop
// out" bridge neighborhood (meaning the k-set was already connected
// through some other path before this edge event) or an addition
// otherwise.
func AllSubgraphsGeneric(idx *graph.Index, u, v graph.Node, k int) (additions, replacements []graph.NodeIDSet) {
	if k < 3 {
		return nil, nil
	}

	adds := newCandidateSet()
	reps := newCandidateSet()

	for h := 0; h <= k-2; h++ {
		j := k - 2 - h

		uHop := idx.NHopNeighborhood(u, h)
		vHop := idx.NHopNeighborhood(v, j)

		var bridge map[graph.Node]struct{}
		if h < j {
			uHopExt := idx.NHopNeighborhood(u, h+1)
			bridge = intersection(flattenValues(uHopExt), flattenValues(vHop))
		} else {
			bridge = intersection(flattenValues(uHop), flattenValues(vHop))
		}
		delete(bridge, u)
		delete(bridge, v)

		for _, uSet := range uHop {
			for _, vSet := range vHop {
				if !disjoint(uSet, vSet) {
					continue
				}
				union := unionSet(uSet, vSet)
				if len(union) != k {
					continue
				}
				candidate := nodeSetToIDSet(union)
				if disjoint(union, bridge) {
					adds.add(candidate)
				} else {
					reps.add(candidate)
				}
			}
		}
	}

	return adds.slice(), reps.slice()
}
