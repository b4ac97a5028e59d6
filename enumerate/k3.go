package enumerate

import "github.com/katalvlaran/subgraphfsm/graph"

// NewSubgraphsK3 returns every 3-vertex set newly connected by an edge
// event between u and v: the third vertex comes from either side's
// exclusive neighborhood (the symmetric difference of their neighbor
// sets), and the edge opens a new wedge through it.
//
// Grounded on the closed-form k=3 exploration rule: a candidate third
// vertex w is viable iff it is adjacent to exactly one of u, v.
func NewSubgraphsK3(idx *graph.Index, u, v graph.Node) []graph.NodeIDSet {
	w := symmetricDifference(idx.Neighbors(u), idx.Neighbors(v))

	out := make([]graph.NodeIDSet, 0, len(w))
	for n := range w {
		out = append(out, idSet(u, v, n))
	}
	return out
}

// AllSubgraphsK3 partitions the 3-vertex sets touched by an edge event
// between u and v into additions (newly connected, one endpoint from
// the symmetric difference of neighbor sets) and replacements (already
// connected via both u and v, one endpoint from the intersection of
// neighbor sets — the edge closes the wedge u-w-v into a triangle).
func AllSubgraphsK3(idx *graph.Index, u, v graph.Node) (additions, replacements []graph.NodeIDSet) {
	nu := idx.Neighbors(u)
	nv := idx.Neighbors(v)

	sd := symmetricDifference(nu, nv)
	common := intersection(nu, nv)

	additions = make([]graph.NodeIDSet, 0, len(sd))
	for n := range sd {
		additions = append(additions, idSet(u, v, n))
	}

	replacements = make([]graph.NodeIDSet, 0, len(common))
	for n := range common {
		replacements = append(replacements, idSet(u, v, n))
	}

	return additions, replacements
}
