// Package cli implements the subgraphfsm command-line driver: the
// simulate, continuous-accuracy, accuracy, random-graph and plot
// commands, built on github.com/spf13/cobra with optional
// github.com/spf13/viper configuration file loading via
// internal/config. The driver is the only part of this module aware
// of flags, files, or process exit codes; every command is a thin
// wrapper around the mining, accuracy, randomgraph, edgefile and
// metrics packages.
package cli
