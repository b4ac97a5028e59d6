package mining

import (
	"fmt"

	"github.com/katalvlaran/subgraphfsm/graph"
)

// AddEdge inserts e into the stream, dispatching to the algorithm
// variant selected by the Session's Mode. It returns false (with no
// state change) if e is already present.
func (s *Session) AddEdge(e graph.Edge) (bool, error) {
	var (
		added bool
		err   error
	)

	s.numCandidates, s.numProcessed = 0, 0
	switch s.mode {
	case Exact:
		added, err = s.exactAdd(e)
	case NaiveReservoir:
		if s.stream == Dynamic {
			added, err = s.naiveDynamicAdd(e)
		} else {
			added, err = s.naiveIncrementalAdd(e)
		}
	case OptimizedReservoir:
		if s.stream == Dynamic {
			added, err = s.optimizedDynamicAdd(e)
		} else {
			added, err = s.optimizedIncrementalAdd(e)
		}
	default:
		return false, fmt.Errorf("mining: AddEdge: unknown mode %s", s.mode)
	}

	s.recordEdgeOpMetrics("add")

	return added, err
}

// RemoveEdge deletes e from the stream. It is only valid for Dynamic-
// stream Sessions; Incremental-stream Sessions reject it with
// ErrRemoveUnsupported.
func (s *Session) RemoveEdge(e graph.Edge) (bool, error) {
	if s.stream != Dynamic {
		return false, fmt.Errorf("mining: RemoveEdge: %w", ErrRemoveUnsupported)
	}

	var (
		removed bool
		err     error
	)

	s.numCandidates, s.numProcessed = 0, 0
	switch s.mode {
	case Exact:
		removed, err = s.exactRemove(e)
	case NaiveReservoir:
		removed, err = s.naiveDynamicRemove(e)
	case OptimizedReservoir:
		removed, err = s.optimizedDynamicRemove(e)
	default:
		return false, fmt.Errorf("mining: RemoveEdge: unknown mode %s", s.mode)
	}

	s.recordEdgeOpMetrics("del")

	return removed, err
}

// recordEdgeOpMetrics is a no-op unless a metrics.MetricStore was
// attached via WithMetricStore. op is encoded as 0.0 for "add" and 1.0
// for "del": the store tracks numeric series only, so the edge
// operation kind is reduced to a two-valued float indicator column.
// AddEdge always records "add" and RemoveEdge always records "del" —
// the metric reflects the event actually being processed, never the
// opposite one. num_candidate_subgraphs/num_processed_subgraphs come
// from whichever add/remove variant just ran (see session.go).
func (s *Session) recordEdgeOpMetrics(op string) {
	if s.metrics == nil {
		return
	}

	opValue := 0.0
	if op == "del" {
		opValue = 1.0
	}

	_ = s.metrics.Record("edge_op", opValue)
	_ = s.metrics.Record("reservoir_full_bool", s.reservoirFullValue())
	_ = s.metrics.Record("num_candidate_subgraphs", float64(s.numCandidates))
	_ = s.metrics.Record("num_processed_subgraphs", float64(s.numProcessed))
}

func (s *Session) reservoirFullValue() float64 {
	if s.reservoir == nil {
		return 0
	}
	if s.reservoir.IsFull(s.m) {
		return 1
	}
	return 0
}
