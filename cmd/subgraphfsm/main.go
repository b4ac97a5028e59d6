// Command subgraphfsm is the driver for the simulate,
// continuous-accuracy, accuracy, random-graph, and plot commands.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/subgraphfsm/cmd/subgraphfsm/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
