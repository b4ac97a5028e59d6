package accuracy

import (
	"math"

	"github.com/katalvlaran/subgraphfsm/canon"
	"github.com/katalvlaran/subgraphfsm/graph"
)

// unionFind is a minimal disjoint-set structure used only to test
// whether a candidate edge subset connects all k vertices.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

func (u *unionFind) singleComponent() bool {
	root := u.find(0)
	for i := 1; i < len(u.parent); i++ {
		if u.find(i) != root {
			return false
		}
	}
	return true
}

func isConnected(k int, edges [][2]int) bool {
	uf := newUnionFind(k)
	for _, e := range edges {
		uf.union(e[0], e[1])
	}
	return uf.singleComponent()
}

// combinations returns every size-r subset of [0, n), as index sets
// into the slice the caller will index with.
func combinations(n, r int) [][]int {
	if r < 0 || r > n {
		return nil
	}
	var out [][]int
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	emit := func() {
		cp := make([]int, r)
		copy(cp, idx)
		out = append(out, cp)
	}

	if r == 0 {
		out = append(out, []int{})
		return out
	}

	emit()
	for {
		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
		emit()
	}
	return out
}

// product enumerates every tuple in {1,...,base}^count, calling f with
// each tuple (0-indexed lookups adjusted by the caller).
func product(base, count int, f func(tuple []int)) {
	tuple := make([]int, count)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == count {
			f(tuple)
			return
		}
		for v := 1; v <= base; v++ {
			tuple[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
}

// CalculateTk exhaustively enumerates every distinct canonical pattern
// of a connected, k-vertex, L-vertex-label, Q-edge-label subgraph.
// Exponential in k, L and Q; intended only for the small values used
// to size a reservoir or evaluate sampling accuracy, never on the
// mining fast path.
func CalculateTk(k, l, q int) int {
	minEdges := k - 1
	maxEdges := k * (k - 1) / 2

	potentialEdges := combinations(k, 2)
	edgePairs := make([][2]int, len(potentialEdges))
	for i, c := range potentialEdges {
		edgePairs[i] = [2]int{c[0], c[1]}
	}

	seen := make(map[string]struct{})

	product(l, k, func(vertexLabels []int) {
		nodes := make([]graph.Node, k)
		for i := 0; i < k; i++ {
			nodes[i] = graph.Node{ID: i, Label: vertexLabels[i]}
		}

		for numEdges := minEdges; numEdges <= maxEdges; numEdges++ {
			for _, edgeIdxSet := range combinations(len(edgePairs), numEdges) {
				chosen := make([][2]int, numEdges)
				for i, idx := range edgeIdxSet {
					chosen[i] = edgePairs[idx]
				}
				if !isConnected(k, chosen) {
					continue
				}

				product(q, numEdges, func(edgeLabels []int) {
					edges := make([]graph.Edge, numEdges)
					for i, pair := range chosen {
						edges[i] = graph.NewEdge(nodes[pair[0]], nodes[pair[1]], edgeLabels[i])
					}
					sg := graph.MakeSubgraph(nodes, edges)
					seen[canon.Label(sg)] = struct{}{}
				})
			}
		}
	})

	return len(seen)
}

// CalculateM returns the (epsilon, delta)-approximation reservoir size
// needed to maintain a uniform sample over tk possible patterns.
func CalculateM(tk int, delta, epsilon float64) int {
	return int(math.Ceil(math.Log(float64(tk)/delta) * ((4 + epsilon) / (epsilon * epsilon))))
}
