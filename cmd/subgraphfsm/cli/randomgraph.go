package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subgraphfsm/edgefile"
	"github.com/katalvlaran/subgraphfsm/randomgraph"
)

var (
	randomGraphL    int
	randomGraphQ    int
	randomGraphDest string
)

var randomGraphCmd = &cobra.Command{
	Use:   "random-graph N p",
	Short: "Generate an Erdos-Renyi labeled graph and write it as an edge file",
	Args:  cobra.ExactArgs(2),
	RunE:  runRandomGraph,
}

func init() {
	rootCmd.AddCommand(randomGraphCmd)

	randomGraphCmd.Flags().IntVarP(&randomGraphL, "labels", "l", 2, "number of distinct vertex labels")
	randomGraphCmd.Flags().IntVarP(&randomGraphQ, "edge-labels", "q", 2, "number of distinct edge labels")
	randomGraphCmd.Flags().StringVarP(&randomGraphDest, "dest", "d", ".", "output directory for the generated edge file")
}

func runRandomGraph(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return newUsageError(fmt.Errorf("N: %w", err))
	}
	p, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return newUsageError(fmt.Errorf("p: %w", err))
	}

	seed := time.Now().UnixNano()
	if driverConfig != nil && driverConfig.Mining.Seed != 0 {
		seed = driverConfig.Mining.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	idx, err := randomgraph.Generate(rng, n, p, randomGraphL, randomGraphQ)
	if err != nil {
		return newUsageError(err)
	}

	id := runIdentifier(rng)
	f, err := createOutputFile(randomGraphDest, id+"_graph.edges")
	if err != nil {
		return err
	}
	defer f.Close()

	if err := edgefile.WriteEdges(f, idx.AllEdges()); err != nil {
		return fmt.Errorf("write edge file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "edge file:", f.Name())
	fmt.Fprintln(cmd.OutOrStdout(), "edges:    ", len(idx.AllEdges()))

	return nil
}
