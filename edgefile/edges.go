package edgefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/subgraphfsm/graph"
)

// ReadEdges parses a line-delimited edge stream: each line is
// "u l_u v l_v label", whitespace-separated. Blank lines are skipped.
func ReadEdges(r io.Reader) ([]graph.Edge, error) {
	var edges []graph.Edge

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("edgefile: line %d: expected 5 fields, got %d", lineNo, len(fields))
		}

		values := make([]int, 5)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("edgefile: line %d: field %d: %w", lineNo, i, err)
			}
			values[i] = v
		}

		u := graph.Node{ID: values[0], Label: values[1]}
		v := graph.Node{ID: values[2], Label: values[3]}
		edges = append(edges, graph.NewEdge(u, v, values[4]))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}

// WriteEdges renders edges in the "u l_u v l_v label" line format.
func WriteEdges(w io.Writer, edges []graph.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %d\n", e.U.ID, e.U.Label, e.V.ID, e.V.Label, e.Label); err != nil {
			return err
		}
	}
	return bw.Flush()
}
