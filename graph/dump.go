package graph

import "sort"

// AllEdges returns every edge currently in the index, in ascending
// (U, V, Label) order. Used by callers that need to serialize or
// iterate the whole edge set (random graph generation, edge-stream
// file writers); the mining core itself never calls this, since it
// only ever reacts to single edge events.
func (idx *Index) AllEdges() []Edge {
	edges := make([]Edge, 0, len(idx.labels))
	for key, label := range idx.labels {
		u := idx.nodeByID[key.a]
		v := idx.nodeByID[key.b]
		edges = append(edges, Edge{U: u, V: v, Label: label})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
	return edges
}
