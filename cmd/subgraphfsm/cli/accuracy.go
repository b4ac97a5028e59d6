package cli

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subgraphfsm/accuracy"
)

var (
	accuracyTau  float64
	accuracyRuns int
)

var accuracyThresholds = []float64{0.001, 0.01, 0.1, 0.2, 1, 2, 10}

var accuracyCmd = &cobra.Command{
	Use:   "accuracy exact_patterns_file sampled_patterns_file T_k",
	Short: "Compare exact and sampled pattern-count files",
	Long: `accuracy reads a single-run exact-counting pattern file and a
multi-run sampled pattern file (as written by simulate), and reports
precision, recall, and average relative error at a sweep of frequency
thresholds.`,
	Args: cobra.ExactArgs(3),
	RunE: runAccuracy,
}

func init() {
	rootCmd.AddCommand(accuracyCmd)

	accuracyCmd.Flags().Float64VarP(&accuracyTau, "tau", "t", 0.001, "coefficient multiplied into each frequency threshold")
	accuracyCmd.Flags().IntVarP(&accuracyRuns, "runs", "r", 5, "number of runs present in the sampled patterns file")
}

func runAccuracy(cmd *cobra.Command, args []string) error {
	tk, err := strconv.Atoi(args[2])
	if err != nil {
		return newUsageError(fmt.Errorf("T_k: %w", err))
	}

	exactCounts, err := readPatternCountsFile(args[0], 1)
	if err != nil {
		return newUsageError(err)
	}
	sampledCounts, err := readPatternCountsFile(args[1], accuracyRuns)
	if err != nil {
		return newUsageError(err)
	}

	exactFreqs := accuracy.PatternFrequencies(exactCounts[0])

	sampledFreqs := make([]map[string]float64, len(sampledCounts))
	for i, counts := range sampledCounts {
		sampledFreqs[i] = accuracy.PatternFrequencies(counts)
	}

	out := cmd.OutOrStdout()
	for _, coefficient := range accuracyThresholds {
		tau := coefficient * accuracyTau

		exactT := accuracy.ThresholdFrequencies(exactFreqs, tau)

		var sumARE, sumPrecision, sumRecall float64
		for _, freqs := range sampledFreqs {
			sampledT := accuracy.ThresholdFrequencies(freqs, tau)
			sumARE += accuracy.AverageRelativeError(exactT, sampledT, tk)
			sumPrecision += accuracy.Precision(exactT, sampledT)
			sumRecall += accuracy.Recall(exactT, sampledT)
		}

		runs := float64(len(sampledFreqs))
		fmt.Fprintf(out, "\nThreshold %g\n", tau)
		fmt.Fprintf(out, "ARE      : %g\n", sumARE/runs)
		fmt.Fprintf(out, "precision: %g\n", sumPrecision/runs)
		fmt.Fprintf(out, "recall   : %g\n", sumRecall/runs)
	}

	return nil
}

// readPatternCountsFile parses a pattern-count CSV in the
// edgefile.WritePatterns format (header "canonical_label count_1 ...
// count_R", space-delimited) into one map[label]count per run.
func readPatternCountsFile(path string, runs int) ([]map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pattern file: %w", err)
	}
	defer f.Close()

	counts := make([]map[string]int, runs)
	for i := range counts {
		counts[i] = make(map[string]int)
	}

	reader := csv.NewReader(bufio.NewReader(f))
	reader.Comma = ' '
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("pattern file %s: empty", path)
		}
		return nil, fmt.Errorf("pattern file %s: %w", path, err)
	}
	if len(header) < 1+runs {
		return nil, fmt.Errorf("pattern file %s: header has %d columns, need at least %d for %d run(s)", path, len(header), 1+runs, runs)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pattern file %s: %w", path, err)
		}
		label := strings.TrimSpace(row[0])
		for i := 0; i < runs; i++ {
			count, err := strconv.Atoi(strings.TrimSpace(row[i+1]))
			if err != nil {
				return nil, fmt.Errorf("pattern file %s: row %q: %w", path, label, err)
			}
			counts[i][label] = count
		}
	}

	return counts, nil
}
