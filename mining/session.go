package mining

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/subgraphfsm/canon"
	"github.com/katalvlaran/subgraphfsm/enumerate"
	"github.com/katalvlaran/subgraphfsm/graph"
	"github.com/katalvlaran/subgraphfsm/metrics"
	"github.com/katalvlaran/subgraphfsm/reservoir"
	"github.com/katalvlaran/subgraphfsm/skip"
)

// Sentinel errors for session construction and use.
var (
	// ErrInvalidK indicates k < 3.
	ErrInvalidK = errors.New("mining: k must be at least 3")

	// ErrReservoirSizeRequired indicates a reservoir Mode was requested with m <= 0.
	ErrReservoirSizeRequired = errors.New("mining: reservoir modes require a positive sample size")

	// ErrRemoveUnsupported indicates RemoveEdge was called on an Incremental-stream Session.
	ErrRemoveUnsupported = errors.New("mining: RemoveEdge requires a Dynamic-stream session")
)

type newSubgraphsFunc func(idx *graph.Index, u, v graph.Node) []graph.NodeIDSet
type allSubgraphsFunc func(idx *graph.Index, u, v graph.Node) (additions, replacements []graph.NodeIDSet)

// PatternCount is a snapshot entry of one canonical pattern's current count.
type PatternCount struct {
	Label string
	Count int
}

// Session is the composed mining engine: one graph index, one pattern
// counter, and (for the reservoir Modes) one reservoir plus whichever
// skip samplers the Stream variant needs.
type Session struct {
	k      int
	mode   Mode
	stream Stream

	idx      *graph.Index
	patterns map[string]int

	newSubgraphs newSubgraphsFunc
	allSubgraphs allSubgraphsFunc

	m           int
	n           int
	skipSurplus int
	reservoir   *reservoir.Reservoir
	rsState     *skip.RSState
	c1, c2      int

	// numCandidates/numProcessed are set by whichever add/remove variant
	// just ran: numCandidates is the size of the candidate vertex-set
	// list the enumerator produced for the event (W, or the addition+
	// replacement total for Exact); numProcessed is how many of those
	// candidates actually changed the pattern counter or reservoir
	// membership. dispatch.go zeroes both before the switch and reads
	// them into the metrics store right after it, so a variant that
	// rejects a duplicate or missing edge reports 0 for both.
	numCandidates int
	numProcessed  int

	rng     *rand.Rand
	metrics *metrics.MetricStore
}

// Option customizes Session construction.
type Option func(*Session)

// WithSeed seeds the session's RNG deterministically.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithMetricStore attaches a metrics.MetricStore to record per-event
// measurements into. The session itself writes "edge_op",
// "reservoir_full_bool", "num_candidate_subgraphs" and
// "num_processed_subgraphs" after every AddEdge/RemoveEdge; the store
// must have those four series registered. "edge_op_ms" is not one of
// them — timing is the caller's responsibility (see cli/simulate.go),
// since only the caller knows what it wants timed.
func WithMetricStore(store *metrics.MetricStore) Option {
	return func(s *Session) { s.metrics = store }
}

// NewSession constructs a mining Session for pattern size k, operating
// mode, and stream kind. m is the target reservoir size; it is
// ignored for Exact mode and must be positive otherwise.
func NewSession(k int, mode Mode, stream Stream, m int, opts ...Option) (*Session, error) {
	if k < 3 {
		return nil, fmt.Errorf("NewSession: k=%d: %w", k, ErrInvalidK)
	}
	if mode != Exact && m <= 0 {
		return nil, fmt.Errorf("NewSession: mode=%s m=%d: %w", mode, m, ErrReservoirSizeRequired)
	}

	newFn, allFn := resolveEnumerators(k)

	s := &Session{
		k:            k,
		mode:         mode,
		stream:       stream,
		idx:          graph.NewIndex(),
		patterns:     make(map[string]int),
		newSubgraphs: newFn,
		allSubgraphs: allFn,
		m:            m,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if mode != Exact {
		s.reservoir = reservoir.New()
	}
	if mode == OptimizedReservoir {
		s.rsState = skip.NewRSState(s.rng, m)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func resolveEnumerators(k int) (newSubgraphsFunc, allSubgraphsFunc) {
	switch k {
	case 3:
		return enumerate.NewSubgraphsK3, enumerate.AllSubgraphsK3
	case 4:
		return enumerate.NewSubgraphsK4, enumerate.AllSubgraphsK4
	default:
		return func(idx *graph.Index, u, v graph.Node) []graph.NodeIDSet {
				return enumerate.NewSubgraphsGeneric(idx, u, v, k)
			}, func(idx *graph.Index, u, v graph.Node) ([]graph.NodeIDSet, []graph.NodeIDSet) {
				return enumerate.AllSubgraphsGeneric(idx, u, v, k)
			}
	}
}

// Patterns returns a snapshot of every pattern with a non-zero count,
// in no particular order.
func (s *Session) Patterns() []PatternCount {
	out := make([]PatternCount, 0, len(s.patterns))
	for label, count := range s.patterns {
		if count != 0 {
			out = append(out, PatternCount{Label: label, Count: count})
		}
	}
	return out
}

// GraphIndex returns the session's underlying graph index.
func (s *Session) GraphIndex() *graph.Index { return s.idx }

// ReservoirLen returns the number of subgraphs currently held by the
// reservoir, or 0 for an Exact-mode session (which keeps none).
func (s *Session) ReservoirLen() int {
	if s.reservoir == nil {
		return 0
	}
	return s.reservoir.Len()
}

// resolveNodes maps a candidate vertex-ID set to labeled Nodes, using
// u and v directly (their labels are already known from the edge
// event) and looking up every other ID against the graph index (they
// must already be present, since the enumerator only ever returns IDs
// of existing vertices).
func resolveNodes(idx *graph.Index, u, v graph.Node, cand graph.NodeIDSet) []graph.Node {
	nodes := make([]graph.Node, 0, len(cand))
	for id := range cand {
		switch id {
		case u.ID:
			nodes = append(nodes, u)
		case v.ID:
			nodes = append(nodes, v)
		default:
			n, ok := idx.NodeByID(id)
			if !ok {
				panic("mining: candidate vertex id not found in graph index")
			}
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func appendEdge(edges []graph.Edge, e graph.Edge) []graph.Edge {
	out := make([]graph.Edge, len(edges)+1)
	copy(out, edges)
	out[len(edges)] = e
	return out
}

func (s *Session) recordPattern(sg graph.Subgraph, delta int) {
	label := canon.Label(sg)
	s.patterns[label] += delta
}
