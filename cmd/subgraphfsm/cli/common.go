package cli

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/subgraphfsm/edgefile"
	"github.com/katalvlaran/subgraphfsm/graph"
	"github.com/katalvlaran/subgraphfsm/mining"
)

// parseMode translates the CLI's "algorithm" argument into a mining.Mode.
func parseMode(s string) (mining.Mode, error) {
	switch strings.ToLower(s) {
	case "exact":
		return mining.Exact, nil
	case "naive":
		return mining.NaiveReservoir, nil
	case "optimal":
		return mining.OptimizedReservoir, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q (expected exact, naive, or optimal)", s)
	}
}

// parseStream translates the CLI's "stream_setting" argument into a mining.Stream.
func parseStream(s string) (mining.Stream, error) {
	switch strings.ToLower(s) {
	case "incremental":
		return mining.Incremental, nil
	case "dynamic":
		return mining.Dynamic, nil
	default:
		return 0, fmt.Errorf("unknown stream setting %q (expected incremental or dynamic)", s)
	}
}

// readEdgeFile opens and parses path as a line-delimited edge stream.
func readEdgeFile(path string) ([]graph.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edge file: %w", err)
	}
	defer f.Close()

	edges, err := edgefile.ReadEdges(f)
	if err != nil {
		return nil, fmt.Errorf("edge file: %w", err)
	}
	return edges, nil
}

// shuffleEdges returns a copy of edges in a random order, so each
// repeated run streams the same edge set in a different sequence.
func shuffleEdges(rng *rand.Rand, edges []graph.Edge) []graph.Edge {
	out := make([]graph.Edge, len(edges))
	copy(out, edges)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// runIdentifier returns a short, time-seeded identifier used to name a
// run's output files, in place of a random UUID.
func runIdentifier(rng *rand.Rand) string {
	return fmt.Sprintf("%d-%04x", time.Now().UnixNano(), rng.Intn(0x10000))
}

// toEdgefilePatterns adapts a mining.Session pattern snapshot to the
// type edgefile.WritePatterns expects.
func toEdgefilePatterns(in []mining.PatternCount) []edgefile.PatternCount {
	out := make([]edgefile.PatternCount, len(in))
	for i, pc := range in {
		out[i] = edgefile.PatternCount{Label: pc.Label, Count: pc.Count}
	}
	return out
}

// createOutputFile creates name under dir, creating dir if necessary.
func createOutputFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	return os.Create(dir + string(os.PathSeparator) + name)
}
