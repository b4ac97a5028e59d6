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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var plotColumns string

var plotCmd = &cobra.Command{
	Use:   "plot csv_file output_image",
	Short: "Render columns of a metrics/accuracy CSV file as a line chart",
	Long: `plot reads a space-delimited CSV file with a header row, as
written by the metrics and accuracy CSV writers, and draws each
selected column as a line series against its row index, saving the
result as an image (format inferred from output_image's extension,
e.g. .png or .svg).`,
	Args: cobra.ExactArgs(2),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotColumns, "columns", "c", "", "comma-separated column names to plot (default: every column)")
}

func runPlot(cmd *cobra.Command, args []string) error {
	csvPath := args[0]
	outPath := args[1]

	headers, series, err := readCSVSeries(csvPath)
	if err != nil {
		return newUsageError(err)
	}

	selected := headers
	if plotColumns != "" {
		selected = strings.Split(plotColumns, ",")
	}

	p := plot.New()
	p.Title.Text = csvPath
	p.X.Label.Text = "event index"
	p.Y.Label.Text = "value"

	var namesAndValues []interface{}
	for _, name := range selected {
		name = strings.TrimSpace(name)
		values, ok := series[name]
		if !ok {
			return newUsageError(fmt.Errorf("column %q not found in %s", name, csvPath))
		}

		pts := make(plotter.XYs, len(values))
		for i, v := range values {
			pts[i].X = float64(i)
			pts[i].Y = v
		}

		namesAndValues = append(namesAndValues, name, pts)
	}

	if err := plotutil.AddLines(p, namesAndValues...); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, outPath); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "plot written to", outPath)
	return nil
}

// readCSVSeries parses a space-delimited CSV with a header row into
// one float64 slice per column, skipping blank cells (as written by
// metrics.MetricStore.WriteCSV for series of unequal length).
func readCSVSeries(path string) ([]string, map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = ' '
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("csv file %s: %w", path, err)
	}

	series := make(map[string][]float64, len(header))
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csv file %s: %w", path, err)
		}

		for i, name := range header {
			if i >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("csv file %s: column %s: %w", path, name, err)
			}
			series[name] = append(series[name], v)
		}
	}

	return header, series, nil
}
