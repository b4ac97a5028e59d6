package cli

import (
	"container/list"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subgraphfsm/accuracy"
	"github.com/katalvlaran/subgraphfsm/edgefile"
	"github.com/katalvlaran/subgraphfsm/graph"
	"github.com/katalvlaran/subgraphfsm/metrics"
	"github.com/katalvlaran/subgraphfsm/mining"
)

// accuracySampleInterval bounds how often the expensive precision/
// recall/ARE computation runs: every this many edge events rather than
// after every single one.
const accuracySampleInterval = 10

// accuracyThreshold is the fixed tau used while an experiment is
// running; the accuracy command takes tau as an explicit flag for
// post-hoc analysis of already-written pattern files.
const accuracyThreshold = 0.005

var (
	contAccTimes      int
	contAccWindowSize int
)

var continuousAccuracyCmd = &cobra.Command{
	Use:   "continuous-accuracy k stream_setting edge_file output_dir reservoir_size T_k",
	Short: "Track reservoir-sampling accuracy against exact counts while streaming",
	Long: `continuous-accuracy drives an exact-counting session and both
reservoir-sampling variants over the same edge stream, sampling
precision/recall/average-relative-error every few events, and writes
the accuracy trace plus final pattern counts to output_dir.`,
	Args: cobra.ExactArgs(6),
	RunE: runContinuousAccuracy,
}

func init() {
	rootCmd.AddCommand(continuousAccuracyCmd)

	continuousAccuracyCmd.Flags().IntVarP(&contAccTimes, "times", "t", 10, "number of independent runs")
	continuousAccuracyCmd.Flags().IntVarP(&contAccWindowSize, "windowsize", "w", 0, "sliding window size (requires dynamic stream setting)")
}

func runContinuousAccuracy(cmd *cobra.Command, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return newUsageError(fmt.Errorf("k: %w", err))
	}
	stream, err := parseStream(args[1])
	if err != nil {
		return newUsageError(err)
	}
	edgeFile := args[2]
	outputDir := args[3]

	m, err := strconv.Atoi(args[4])
	if err != nil {
		return newUsageError(fmt.Errorf("reservoir_size: %w", err))
	}
	tk, err := strconv.Atoi(args[5])
	if err != nil {
		return newUsageError(fmt.Errorf("T_k: %w", err))
	}

	windowSize := contAccWindowSize
	if windowSize > 0 && stream != mining.Dynamic {
		return newUsageError(fmt.Errorf("sliding window is only used with the dynamic stream setting, got %s", stream))
	}

	edges, err := readEdgeFile(edgeFile)
	if err != nil {
		return err
	}

	driverRNG := rand.New(rand.NewSource(time.Now().UnixNano()))
	if driverConfig != nil && driverConfig.Mining.Seed != 0 {
		driverRNG = rand.New(rand.NewSource(driverConfig.Mining.Seed))
	}

	perfStore := metrics.NewMetricStore("exact_edge_op_ms", "naive_edge_op_ms", "optimal_edge_op_ms")
	accStore := metrics.NewMetricStore("naive_precision", "naive_recall", "naive_are", "optimal_precision", "optimal_recall", "optimal_are")

	var (
		exactRuns   [][]mining.PatternCount
		naiveRuns   [][]mining.PatternCount
		optimalRuns [][]mining.PatternCount
	)

	for i := 0; i < contAccTimes; i++ {
		seed := driverRNG.Int63()

		exactSession, err := mining.NewSession(k, mining.Exact, stream, 0, mining.WithSeed(seed))
		if err != nil {
			return newUsageError(err)
		}
		naiveSession, err := mining.NewSession(k, mining.NaiveReservoir, stream, m, mining.WithSeed(seed))
		if err != nil {
			return newUsageError(err)
		}
		optimalSession, err := mining.NewSession(k, mining.OptimizedReservoir, stream, m, mining.WithSeed(seed))
		if err != nil {
			return newUsageError(err)
		}

		if err := runOneAccuracyPass(exactSession, naiveSession, optimalSession, shuffleEdges(driverRNG, edges), windowSize, tk, perfStore, accStore); err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}

		exactRuns = append(exactRuns, exactSession.Patterns())
		naiveRuns = append(naiveRuns, naiveSession.Patterns())
		optimalRuns = append(optimalRuns, optimalSession.Patterns())

		fmt.Fprintf(cmd.OutOrStdout(), "run %d complete\n", i+1)
	}

	id := runIdentifier(driverRNG)

	if err := writePatternRuns(outputDir, id+"_exact_patterns.csv", exactRuns); err != nil {
		return err
	}
	if err := writePatternRuns(outputDir, id+"_naive_patterns.csv", naiveRuns); err != nil {
		return err
	}
	if err := writePatternRuns(outputDir, id+"_optimal_patterns.csv", optimalRuns); err != nil {
		return err
	}

	perfFile, err := createOutputFile(outputDir, id+"_performance.csv")
	if err != nil {
		return err
	}
	defer perfFile.Close()
	if err := perfStore.WriteCSV(perfFile); err != nil {
		return fmt.Errorf("write performance metrics: %w", err)
	}

	accFile, err := createOutputFile(outputDir, id+"_accuracy.csv")
	if err != nil {
		return err
	}
	defer accFile.Close()
	if err := accStore.WriteCSV(accFile); err != nil {
		return fmt.Errorf("write accuracy trace: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "performance file:", perfFile.Name())
	fmt.Fprintln(cmd.OutOrStdout(), "accuracy file:   ", accFile.Name())

	return nil
}

// runOneAccuracyPass streams edges through all three sessions in
// lock-step, applying a sliding-window edge removal when windowSize >
// 0, and records per-event timings plus periodic accuracy samples.
func runOneAccuracyPass(exact, naive, optimal *mining.Session, edges []graph.Edge, windowSize, tk int, perfStore, accStore *metrics.MetricStore) error {
	window := list.New()

	for idx, e := range edges {
		var toRemove *graph.Edge
		if windowSize > 0 {
			window.PushBack(e)
			if window.Len() > windowSize {
				front := window.Remove(window.Front()).(graph.Edge)
				toRemove = &front
			}
		}

		if err := timedAddEdge(perfStore, "exact_edge_op_ms", exact, e); err != nil {
			return err
		}
		if err := timedAddEdge(perfStore, "naive_edge_op_ms", naive, e); err != nil {
			return err
		}
		if err := timedAddEdge(perfStore, "optimal_edge_op_ms", optimal, e); err != nil {
			return err
		}

		if toRemove != nil {
			if _, err := exact.RemoveEdge(*toRemove); err != nil {
				return err
			}
			if _, err := naive.RemoveEdge(*toRemove); err != nil {
				return err
			}
			if _, err := optimal.RemoveEdge(*toRemove); err != nil {
				return err
			}
		}

		if idx%accuracySampleInterval == 0 {
			recordAccuracySample(accStore, "naive", exact, naive, tk)
			recordAccuracySample(accStore, "optimal", exact, optimal, tk)
		}
	}

	return nil
}

func timedAddEdge(store *metrics.MetricStore, metricName string, s *mining.Session, e graph.Edge) error {
	start := time.Now()
	_, err := s.AddEdge(e)
	_ = store.Record(metricName, float64(time.Since(start).Microseconds()))
	return err
}

func recordAccuracySample(store *metrics.MetricStore, label string, exact, sampled *mining.Session, tk int) {
	exactFreqs := accuracy.PatternFrequencies(patternMap(exact.Patterns()))
	sampledFreqs := accuracy.PatternFrequencies(patternMap(sampled.Patterns()))

	exactT := accuracy.ThresholdFrequencies(exactFreqs, accuracyThreshold)
	sampledT := accuracy.ThresholdFrequencies(sampledFreqs, accuracyThreshold)

	_ = store.Record(label+"_precision", accuracy.Precision(exactT, sampledT))
	_ = store.Record(label+"_recall", accuracy.Recall(exactT, sampledT))
	_ = store.Record(label+"_are", accuracy.AverageRelativeError(exactT, sampledT, tk))
}

func patternMap(pcs []mining.PatternCount) map[string]int {
	out := make(map[string]int, len(pcs))
	for _, pc := range pcs {
		out[pc.Label] = pc.Count
	}
	return out
}

func writePatternRuns(outputDir, name string, runs [][]mining.PatternCount) error {
	f, err := createOutputFile(outputDir, name)
	if err != nil {
		return err
	}
	defer f.Close()

	converted := make([][]edgefile.PatternCount, len(runs))
	for i, run := range runs {
		converted[i] = toEdgefilePatterns(run)
	}
	if err := edgefile.WritePatterns(f, converted); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
