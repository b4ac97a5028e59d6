package enumerate

import "github.com/katalvlaran/subgraphfsm/graph"

// symmetricDifference returns the nodes present in exactly one of a, b.
func symmetricDifference(a, b map[graph.Node]struct{}) map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{})
	for n := range a {
		if _, ok := b[n]; !ok {
			out[n] = struct{}{}
		}
	}
	for n := range b {
		if _, ok := a[n]; !ok {
			out[n] = struct{}{}
		}
	}
	return out
}

// intersection returns the nodes present in both a and b.
func intersection(a, b map[graph.Node]struct{}) map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{})
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for n := range small {
		if _, ok := big[n]; ok {
			out[n] = struct{}{}
		}
	}
	return out
}

// difference returns the nodes in a but not in b.
func difference(a, b map[graph.Node]struct{}) map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{})
	for n := range a {
		if _, ok := b[n]; !ok {
			out[n] = struct{}{}
		}
	}
	return out
}

// unionSet returns every node present in a or b.
func unionSet(a, b map[graph.Node]struct{}) map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{}, len(a)+len(b))
	for n := range a {
		out[n] = struct{}{}
	}
	for n := range b {
		out[n] = struct{}{}
	}
	return out
}

// pairCombinations returns every unordered pair of distinct elements of s.
func pairCombinations(s map[graph.Node]struct{}) [][2]graph.Node {
	nodes := make([]graph.Node, 0, len(s))
	for n := range s {
		nodes = append(nodes, n)
	}
	var pairs [][2]graph.Node
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			pairs = append(pairs, [2]graph.Node{nodes[i], nodes[j]})
		}
	}
	return pairs
}

// product returns every ordered pair (a, b) with a in left, b in right.
func product(left, right map[graph.Node]struct{}) [][2]graph.Node {
	var pairs [][2]graph.Node
	for a := range left {
		for b := range right {
			pairs = append(pairs, [2]graph.Node{a, b})
		}
	}
	return pairs
}

// idSet builds a graph.NodeIDSet from a fixed list of nodes.
func idSet(nodes ...graph.Node) graph.NodeIDSet {
	s := make(graph.NodeIDSet, len(nodes))
	for _, n := range nodes {
		s[n.ID] = struct{}{}
	}
	return s
}

// candidateSet accumulates distinct candidate vertex-ID sets, deduping
// on graph.NodeIDSet.Key the way the original frozenset(...) sets did.
type candidateSet struct {
	seen  map[string]struct{}
	order []graph.NodeIDSet
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]struct{})}
}

func (c *candidateSet) add(s graph.NodeIDSet) {
	k := s.Key()
	if _, ok := c.seen[k]; ok {
		return
	}
	c.seen[k] = struct{}{}
	c.order = append(c.order, s)
}

func (c *candidateSet) slice() []graph.NodeIDSet {
	return c.order
}
