package canon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/subgraphfsm/graph"
)

type matrix [][]int

func newMatrix(n int) matrix {
	m := make(matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

func (m matrix) clone() matrix {
	out := make(matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}

type partitionKey struct {
	degree, label int
}

type partitionEntry struct {
	key  partitionKey
	size int
}

func pairKey(u, v int) [2]int {
	if v < u {
		u, v = v, u
	}
	return [2]int{u, v}
}

// Label computes the canonical label of sg: isomorphic labeled
// subgraphs (matching both vertex and edge labels) always produce the
// same Label, and non-isomorphic ones never do.
func Label(sg graph.Subgraph) string {
	n := len(sg.Nodes)
	if n == 0 {
		return ""
	}

	vertexLabel := make(map[int]int, n)
	degree := make(map[int]int, n)
	edgeLabel := make(map[[2]int]int, len(sg.Edges))

	for _, node := range sg.Nodes {
		vertexLabel[node.ID] = node.Label
	}
	for _, e := range sg.Edges {
		edgeLabel[pairKey(e.U, e.V)] = e.Label
		degree[e.U]++
		degree[e.V]++
	}

	parts := make(map[partitionKey][]int)
	for _, node := range sg.Nodes {
		key := partitionKey{degree: degree[node.ID], label: node.Label}
		parts[key] = append(parts[key], node.ID)
	}

	entries := make([]partitionEntry, 0, len(parts))
	for key, ids := range parts {
		entries = append(entries, partitionEntry{key: key, size: len(ids)})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.key.degree != b.key.degree {
			return a.key.degree > b.key.degree
		}
		if a.size != b.size {
			return a.size > b.size
		}
		return a.key.label > b.key.label
	})

	vertices := make([]int, 0, n)
	for _, e := range entries {
		vertices = append(vertices, parts[e.key]...)
	}

	adj := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if lbl, ok := edgeLabel[pairKey(vertices[i], vertices[j])]; ok {
				adj[i][j] = lbl
			}
		}
	}

	start := 0
	for _, e := range entries {
		size := e.size
		if size > 1 {
			global := make([]int, size)
			for k := range global {
				global[k] = start + k
			}

			var bestLabel string
			var bestVertices []int
			var bestAdj matrix

			permute(global, func(perm []int) {
				candVertices, candAdj := applyPartitionPermutation(vertices, adj, start, size, perm)
				candLabel := makeLabel(candVertices, candAdj, vertexLabel)
				if bestVertices == nil || candLabel > bestLabel {
					bestLabel = candLabel
					bestVertices = candVertices
					bestAdj = candAdj
				}
			})

			vertices = bestVertices
			adj = bestAdj
		}
		start += size
	}

	return makeLabel(vertices, adj, vertexLabel)
}

// applyPartitionPermutation reorders vertices[start:start+size] and the
// corresponding rows/columns of adj according to perm (a permutation
// of the global index range [start, start+size)), mirroring numpy
// fancy-index row-then-column reassignment: rows are reassigned from
// the original matrix first, then columns are reassigned from the
// row-reassigned matrix.
func applyPartitionPermutation(vertices []int, adj matrix, start, size int, perm []int) ([]int, matrix) {
	n := len(vertices)

	newVertices := append([]int(nil), vertices...)
	for k := 0; k < size; k++ {
		newVertices[start+k] = vertices[perm[k]]
	}

	rowPermuted := adj.clone()
	for k := 0; k < size; k++ {
		rowPermuted[start+k] = append([]int(nil), adj[perm[k]]...)
	}

	colPermuted := rowPermuted.clone()
	for i := 0; i < n; i++ {
		for k := 0; k < size; k++ {
			colPermuted[i][start+k] = rowPermuted[i][perm[k]]
		}
	}

	return newVertices, colPermuted
}

// makeLabel renders the final comparable string for a vertex order and
// adjacency matrix: the vertex-label sequence followed by the
// flattened strictly-lower-triangular adjacency values, each field
// delimited so that no two distinct label sequences can collide
// through concatenation ambiguity.
func makeLabel(vertices []int, adj matrix, vertexLabel map[int]int) string {
	n := len(vertices)
	fields := make([]string, 0, n+n*(n-1)/2)

	for _, u := range vertices {
		fields = append(fields, strconv.Itoa(vertexLabel[u]))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			fields = append(fields, strconv.Itoa(adj[i][j]))
		}
	}

	return strings.Join(fields, ",")
}
