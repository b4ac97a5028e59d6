package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subgraphfsm/internal/config"
)

var (
	cfgFile      string
	driverConfig *config.Config
)

// rootCmd is the subgraphfsm driver's base command: it carries no
// behavior of its own beyond loading the optional --config file
// before any subcommand runs.
var rootCmd = &cobra.Command{
	Use:   "subgraphfsm",
	Short: "Streaming frequent subgraph pattern mining over an edge-labeled graph stream",
	Long: `subgraphfsm mines frequent k-node connected, edge-labeled subgraph
patterns from a streaming sequence of edge insertions and, for dynamic
streams, removals - exactly, or under uniform reservoir sampling
(naive per-candidate sampling, or Vitter/Random-Pairing skip sampling).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return newUsageError(err)
		}
		driverConfig = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML/JSON/TOML config file (optional; flags override it)")
}

// Execute runs the root command and returns whatever error the
// selected subcommand produced, for the caller to translate into a
// process exit code via ExitCode.
func Execute() error {
	return rootCmd.Execute()
}
