package edgefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// PatternCount is one canonical pattern label and its observed count
// within a single mining run.
type PatternCount struct {
	Label string
	Count int
}

// WritePatterns renders one or more mining runs as a space-delimited
// CSV: a "canonical_label" column followed by one "count_N" column
// per run, matching the format the accuracy evaluator reads. Patterns
// absent from a given run are written as 0 for that run's column.
func WritePatterns(w io.Writer, runs [][]PatternCount) error {
	counts := make(map[string][]int)
	for runIdx, run := range runs {
		for _, pc := range run {
			row, ok := counts[pc.Label]
			if !ok {
				row = make([]int, len(runs))
				counts[pc.Label] = row
			}
			row[runIdx] = pc.Count
		}
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	cw := csv.NewWriter(w)
	cw.Comma = ' '
	defer cw.Flush()

	header := make([]string, 0, len(runs)+1)
	header = append(header, "canonical_label")
	for i := range runs {
		header = append(header, fmt.Sprintf("count_%d", i+1))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, label := range labels {
		row[0] = label
		for i, c := range counts[label] {
			row[i+1] = fmt.Sprintf("%d", c)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
