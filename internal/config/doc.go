// Package config loads CLI driver defaults (reservoir size, run count,
// RNG seed, output directory) from an optional YAML/JSON/TOML file via
// github.com/spf13/viper: defaults are set first, a config file
// overlays them if present and readable, and a missing file is not an
// error. Command-line flags are applied by the caller after Load
// returns, so flags always take precedence over file values
// (viper.Unmarshal only ever sees the file+defaults layer here; the
// cmd package merges flags in).
package config
