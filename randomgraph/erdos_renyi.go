package randomgraph

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/subgraphfsm/graph"
)

// Sentinel errors for random-graph generation parameters.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("randomgraph: n must be at least 1")

	// ErrInvalidProbability indicates p is outside [0, 1].
	ErrInvalidProbability = errors.New("randomgraph: p must be in [0,1]")

	// ErrInvalidLabelCount indicates L or Q is less than 1.
	ErrInvalidLabelCount = errors.New("randomgraph: label count must be at least 1")
)

// plainEdge is an unlabeled undirected edge between two vertex
// indices, i < j.
type plainEdge struct {
	i, j int
}

// ErdosRenyi samples an Erdős–Rényi undirected simple graph over n
// vertices (indices 0..n-1): each unordered pair {i,j}, i<j, is
// included independently with probability p.
func ErdosRenyi(rng *rand.Rand, n int, p float64) ([]plainEdge, error) {
	if n < 1 {
		return nil, fmt.Errorf("ErdosRenyi: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("ErdosRenyi: p=%g: %w", p, ErrInvalidProbability)
	}

	var edges []plainEdge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() <= p {
				edges = append(edges, plainEdge{i: i, j: j})
			}
		}
	}
	return edges, nil
}

// LabelGraph assigns each vertex one of L labels and each edge one of
// Q labels, uniformly at random, and returns the resulting labeled
// graph.Index.
func LabelGraph(rng *rand.Rand, n int, edges []plainEdge, l, q int) (*graph.Index, error) {
	if l < 1 || q < 1 {
		return nil, fmt.Errorf("LabelGraph: L=%d Q=%d: %w", l, q, ErrInvalidLabelCount)
	}

	vertexLabels := make([]int, n)
	for i := range vertexLabels {
		vertexLabels[i] = 1 + rng.Intn(l)
	}

	idx := graph.NewIndex()
	for _, e := range edges {
		u := graph.Node{ID: e.i, Label: vertexLabels[e.i]}
		v := graph.Node{ID: e.j, Label: vertexLabels[e.j]}
		edgeLabel := 1 + rng.Intn(q)
		if err := idx.AddEdge(graph.NewEdge(u, v, edgeLabel)); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Generate is the convenience composition of ErdosRenyi followed by
// LabelGraph, used by the "random-graph" CLI command.
func Generate(rng *rand.Rand, n int, p float64, l, q int) (*graph.Index, error) {
	edges, err := ErdosRenyi(rng, n, p)
	if err != nil {
		return nil, err
	}
	return LabelGraph(rng, n, edges, l, q)
}
