package enumerate

import "github.com/katalvlaran/subgraphfsm/graph"

// NewSubgraphsK4 returns every 4-vertex set newly connected by an edge
// event between u and v, covering the three addition subcases of the
// seven-subcase k=4 case analysis:
//
//	A1 — both extra vertices come from one endpoint's exclusive
//	     neighborhood (a wedge completes into a star, or a triangle
//	     into a kite).
//	A2 — one extra vertex is an exclusive one-hop neighbor, the other
//	     its two-hop extension not shared by the other endpoint (a
//	     wedge extends into a path).
//	A3 — the two extra vertices come one from each endpoint's
//	     exclusive neighborhood, provided they are not already joined
//	     through u's two-hop neighborhood (two disjoint pairs become a
//	     path).
func NewSubgraphsK4(idx *graph.Index, u, v graph.Node) []graph.NodeIDSet {
	nu := idx.Neighbors(u)
	nv := idx.Neighbors(v)
	common := intersection(nu, nv)

	uOwn := difference(nu, common)
	vOwn := difference(nv, common)

	out := newCandidateSet()

	if len(uOwn) > 1 {
		for _, pair := range pairCombinations(uOwn) {
			out.add(idSet(u, v, pair[0], pair[1]))
		}
	}
	if len(vOwn) > 1 {
		for _, pair := range pairCombinations(vOwn) {
			out.add(idSet(u, v, pair[0], pair[1]))
		}
	}

	uTwoHop := idx.TwoHopNeighborhood(u, uOwn, nil)
	vTwoHop := idx.TwoHopNeighborhood(v, vOwn, nil)

	for n1, via := range uTwoHop {
		if _, excluded := vOwn[n1]; excluded {
			continue
		}
		for n2 := range via {
			out.add(idSet(u, v, n1, n2))
		}
	}
	for n1, via := range vTwoHop {
		if _, excluded := uOwn[n1]; excluded {
			continue
		}
		for n2 := range via {
			out.add(idSet(u, v, n1, n2))
		}
	}

	if len(uOwn) > 0 && len(vOwn) > 0 {
		for _, pair := range product(uOwn, vOwn) {
			nU, nV := pair[0], pair[1]
			via, linked := uTwoHop[nV]
			if !linked {
				out.add(idSet(u, v, nU, nV))
				continue
			}
			if _, throughNU := via[nU]; !throughNU {
				out.add(idSet(u, v, nU, nV))
			}
		}
	}

	return out.slice()
}

// AllSubgraphsK4 partitions the 4-vertex sets touched by an edge event
// between u and v into the three addition subcases (A1/A2/A3, as
// NewSubgraphsK4) and the four replacement subcases:
//
//	R1 — a two-hop extension already adjacent to the other endpoint
//	     (a path closes into a square).
//	R2 — one endpoint's exclusive neighbor paired with a vertex in the
//	     one-hop common neighborhood (a path/kite gains a diamond
//	     edge).
//	R3 — a two-hop extension of u reached only through the one-hop
//	     common neighborhood, excluding v and v's exclusive neighbors
//	     (a star closes into a kite).
//	R4 — two distinct one-hop common neighbors paired together (a
//	     square closes into a diamond, or a diamond into a clique).
func AllSubgraphsK4(idx *graph.Index, u, v graph.Node) (additions, replacements []graph.NodeIDSet) {
	nu := idx.Neighbors(u)
	nv := idx.Neighbors(v)
	common := intersection(nu, nv)

	uOwn := difference(nu, common)
	vOwn := difference(nv, common)

	adds := newCandidateSet()
	reps := newCandidateSet()

	if len(uOwn) > 1 {
		for _, pair := range pairCombinations(uOwn) {
			adds.add(idSet(u, v, pair[0], pair[1]))
		}
	}
	if len(vOwn) > 1 {
		for _, pair := range pairCombinations(vOwn) {
			adds.add(idSet(u, v, pair[0], pair[1]))
		}
	}

	uTwoHop := idx.TwoHopNeighborhood(u, uOwn, nil)
	if len(uTwoHop) > 0 {
		for n1, via := range uTwoHop {
			if _, inVOwn := vOwn[n1]; !inVOwn {
				for n2 := range via {
					adds.add(idSet(u, v, n1, n2))
				}
			} else {
				for n2 := range via {
					reps.add(idSet(u, v, n1, n2))
				}
			}
		}
	}

	vTwoHop := idx.TwoHopNeighborhood(v, vOwn, nil)
	if len(vTwoHop) > 0 {
		for n1, via := range vTwoHop {
			if _, inUOwn := uOwn[n1]; !inUOwn {
				for n2 := range via {
					adds.add(idSet(u, v, n1, n2))
				}
			} else {
				for n2 := range via {
					reps.add(idSet(u, v, n1, n2))
				}
			}
		}
	}

	if len(uOwn) > 0 && len(vOwn) > 0 {
		for _, pair := range product(uOwn, vOwn) {
			nU, nV := pair[0], pair[1]
			via, linked := uTwoHop[nV]
			if !linked {
				adds.add(idSet(u, v, nU, nV))
				continue
			}
			if _, throughNU := via[nU]; !throughNU {
				adds.add(idSet(u, v, nU, nV))
			}
		}
	}

	if len(common) > 0 {
		if len(uOwn) > 0 {
			for _, pair := range product(uOwn, common) {
				reps.add(idSet(u, v, pair[0], pair[1]))
			}
		}
		if len(vOwn) > 0 {
			for _, pair := range product(vOwn, common) {
				reps.add(idSet(u, v, pair[0], pair[1]))
			}
		}
	}

	exclude := make(map[graph.Node]struct{}, len(vOwn)+1)
	for n := range vOwn {
		exclude[n] = struct{}{}
	}
	exclude[v] = struct{}{}
	twoHopCommon := idx.TwoHopNeighborhood(u, common, exclude)
	if len(twoHopCommon) > 0 {
		for n1, via := range twoHopCommon {
			for n2 := range via {
				reps.add(idSet(u, v, n1, n2))
			}
		}
	}

	if len(common) > 1 {
		for _, pair := range pairCombinations(common) {
			reps.add(idSet(u, v, pair[0], pair[1]))
		}
	}

	return adds.slice(), reps.slice()
}
