package graph

import "sort"

// TwoHopNeighborhood returns, for each node s reachable from source in
// exactly two hops, the set of intermediaries through which s is
// reached. source itself, its direct neighbors, and any node in
// exclude are never returned as keys.
//
// If through is non-nil, only intermediaries in through are
// considered (this lets the k=4 enumerator restrict the walk to U, V,
// or C without building a throwaway subgraph).
//
// Complexity: O(deg(source) * max-deg).
func (idx *Index) TwoHopNeighborhood(source Node, through map[Node]struct{}, exclude map[Node]struct{}) map[Node]map[Node]struct{} {
	oneHop := idx.Neighbors(source)

	excluded := make(map[Node]struct{}, len(exclude)+len(oneHop)+1)
	for n := range exclude {
		excluded[n] = struct{}{}
	}
	for n := range oneHop {
		excluded[n] = struct{}{}
	}
	excluded[source] = struct{}{}

	intermediaries := oneHop
	if through != nil {
		intermediaries = make(map[Node]struct{})
		for n := range oneHop {
			if _, ok := through[n]; ok {
				intermediaries[n] = struct{}{}
			}
		}
	}

	result := make(map[Node]map[Node]struct{})
	for v := range intermediaries {
		for s := range idx.Neighbors(v) {
			if _, skip := excluded[s]; skip {
				continue
			}
			via, ok := result[s]
			if !ok {
				via = make(map[Node]struct{})
				result[s] = via
			}
			via[v] = struct{}{}
		}
	}

	return result
}

// InducedEdges returns every edge of the graph between two nodes in
// nodes, in ascending-pair order. nodes need not be sorted; the
// returned slice always is, since pairs are iterated in the ascending
// order of the sorted input.
//
// Complexity: O(|nodes|^2).
func (idx *Index) InducedEdges(nodes []Node) []Edge {
	sorted := make([]Node, len(nodes))
	copy(sorted, nodes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var edges []Edge
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			u, v := sorted[i], sorted[j]
			if label, ok := idx.EdgeLabel(u.ID, v.ID); ok {
				edges = append(edges, NewEdge(u, v, label))
			}
		}
	}

	return edges
}

// nodeSetKey is a hashable representation of a set of Nodes, built by
// sorting the members. It lets NHopNeighborhood dedupe candidate
// vertex sets in a plain Go map instead of implementing a custom
// frozenset type.
type nodeSetKey string

func keyOf(nodes map[Node]struct{}) nodeSetKey {
	sorted := make([]Node, 0, len(nodes))
	for n := range nodes {
		sorted = append(sorted, n)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	buf := make([]byte, 0, len(sorted)*16)
	for _, n := range sorted {
		buf = appendInt(buf, n.ID)
		buf = append(buf, ',')
		buf = appendInt(buf, n.Label)
		buf = append(buf, ';')
	}
	return nodeSetKey(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func cloneSet(s map[Node]struct{}) map[Node]struct{} {
	out := make(map[Node]struct{}, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	return out
}

func unionSet(a, b map[Node]struct{}) map[Node]struct{} {
	out := cloneSet(a)
	for n := range b {
		out[n] = struct{}{}
	}
	return out
}

// NHopNeighborhood produces every vertex set of size n+1 that forms a
// connected subgraph containing source reached in exactly n hops. It
// underlies the generic (arbitrary-k) enumerator fallback; the
// optimized k=3/k=4 enumerators never call it.
//
// Complexity: exponential in n in the worst case; acceptable only
// because the generic path is a rarely-exercised fallback, not the
// k=3/k=4 fast path.
func (idx *Index) NHopNeighborhood(source Node, n int) map[nodeSetKey]map[Node]struct{} {
	if n <= 0 {
		singleton := map[Node]struct{}{source: {}}
		return map[nodeSetKey]map[Node]struct{}{keyOf(singleton): singleton}
	}

	type frame struct {
		node Node
		hops map[Node]struct{}
	}

	hopSets := make(map[int]map[nodeSetKey]map[Node]struct{})
	for m := 1; m <= n; m++ {
		hopSets[m] = make(map[nodeSetKey]map[Node]struct{})
	}

	stack := []frame{{node: source, hops: map[Node]struct{}{source: {}}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		m := len(top.hops) - 1
		if m > 0 {
			hopSets[m][keyOf(top.hops)] = top.hops
		}
		if m >= n {
			continue
		}

		for v := range idx.Neighbors(top.node) {
			if _, seen := top.hops[v]; seen {
				continue
			}
			next := unionSet(top.hops, map[Node]struct{}{v: {}})
			stack = append(stack, frame{node: v, hops: next})
		}
	}

	for k := 1; k < n; k++ {
		for _, nk := range hopSets[k] {
			for _, n1 := range hopSets[1] {
				combined := unionSet(nk, n1)
				if len(combined) == k+2 {
					hopSets[k+1][keyOf(combined)] = combined
				}
			}
		}
	}

	return hopSets[n]
}
