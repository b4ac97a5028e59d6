package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subgraphfsm/edgefile"
	"github.com/katalvlaran/subgraphfsm/metrics"
	"github.com/katalvlaran/subgraphfsm/mining"
)

var (
	simulateM     int
	simulateTimes int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate k stream_setting algorithm edge_file output_dir",
	Short: "Run frequent subgraph mining over an edge stream",
	Long: `simulate replays an edge file through one mining algorithm variant
for k-node patterns, once per run (-t runs, each with a fresh shuffle
of the edges), and writes the per-run pattern counts and per-event
metrics to output_dir.`,
	Args: cobra.ExactArgs(5),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simulateM, "reservoir-size", "m", 0, "reservoir size for naive and optimal algorithms (0 uses the config's mining.reservoir_size, default 1000)")
	simulateCmd.Flags().IntVarP(&simulateTimes, "times", "t", 10, "number of independent runs")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return newUsageError(fmt.Errorf("k: %w", err))
	}

	stream, err := parseStream(args[1])
	if err != nil {
		return newUsageError(err)
	}
	mode, err := parseMode(args[2])
	if err != nil {
		return newUsageError(err)
	}

	edgeFile := args[3]
	outputDir := args[4]

	m := simulateM
	if m == 0 && driverConfig != nil {
		m = driverConfig.Mining.ReservoirSize
	}
	if mode != mining.Exact && m <= 0 {
		return newUsageError(fmt.Errorf("the reservoir size (-m) must be defined for the %s algorithm", args[2]))
	}

	times := simulateTimes

	edges, err := readEdgeFile(edgeFile)
	if err != nil {
		return err
	}

	driverRNG := rand.New(rand.NewSource(time.Now().UnixNano()))
	if driverConfig != nil && driverConfig.Mining.Seed != 0 {
		driverRNG = rand.New(rand.NewSource(driverConfig.Mining.Seed))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Running Frequent Subgraph Mining on an Evolving Graph")
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "stream setting:", stream)
	fmt.Fprintln(cmd.OutOrStdout(), "algorithm:     ", mode)
	fmt.Fprintln(cmd.OutOrStdout(), "k:             ", k)
	fmt.Fprintln(cmd.OutOrStdout(), "M:             ", m)
	fmt.Fprintln(cmd.OutOrStdout(), "times:         ", times)

	var runPatterns [][]mining.PatternCount
	store := metrics.NewMetricStore("edge_op", "edge_op_ms", "reservoir_full_bool", "num_candidate_subgraphs", "num_processed_subgraphs")

	for i := 0; i < times; i++ {
		seed := driverRNG.Int63()
		session, err := mining.NewSession(k, mode, stream, m, mining.WithSeed(seed), mining.WithMetricStore(store))
		if err != nil {
			return newUsageError(err)
		}

		shuffled := shuffleEdges(driverRNG, edges)

		for _, e := range shuffled {
			start := time.Now()
			if _, err := session.AddEdge(e); err != nil {
				return fmt.Errorf("run %d: AddEdge: %w", i+1, err)
			}
			_ = store.Record("edge_op_ms", float64(time.Since(start).Microseconds()))
		}

		runPatterns = append(runPatterns, session.Patterns())
		fmt.Fprintf(cmd.OutOrStdout(), "run %d: %d patterns, reservoir=%d\n", i+1, len(session.Patterns()), session.ReservoirLen())
	}

	id := runIdentifier(driverRNG)

	patternsFile, err := createOutputFile(outputDir, id+"_patterns.csv")
	if err != nil {
		return err
	}
	defer patternsFile.Close()

	runs := make([][]edgefile.PatternCount, len(runPatterns))
	for i, run := range runPatterns {
		runs[i] = toEdgefilePatterns(run)
	}
	if err := edgefile.WritePatterns(patternsFile, runs); err != nil {
		return fmt.Errorf("write patterns: %w", err)
	}

	metricsFile, err := createOutputFile(outputDir, id+"_metrics.csv")
	if err != nil {
		return err
	}
	defer metricsFile.Close()

	if err := store.WriteCSV(metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "patterns file:", patternsFile.Name())
	fmt.Fprintln(cmd.OutOrStdout(), "metrics file: ", metricsFile.Name())

	return nil
}
