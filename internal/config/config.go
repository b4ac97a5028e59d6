package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the CLI driver's file/environment-sourced defaults.
// Mining.ReservoirSize backs simulate's -m flag (the flag wins when
// non-zero) and Mining.Seed, which has no flag, seeds the driver RNG
// when non-zero. Mining.Runs and Output.Dir are loaded and validated,
// but no command reads them: -t and output_dir come from the command
// line only.
type Config struct {
	Mining MiningConfig `mapstructure:"mining"`
	Output OutputConfig `mapstructure:"output"`
}

// MiningConfig holds defaults for mining.Session construction.
type MiningConfig struct {
	// ReservoirSize is the default -m value for reservoir-sampling modes.
	ReservoirSize int `mapstructure:"reservoir_size"`
	// Runs is a run count per simulate invocation; the -t flag's own
	// default (10) applies, since no command reads this field.
	Runs int `mapstructure:"runs"`
	// Seed seeds every run's RNG deterministically when non-zero; 0 means
	// "use a process-wide non-deterministic seed" (mining.NewSession's default).
	Seed int64 `mapstructure:"seed"`
}

// OutputConfig holds default output locations.
type OutputConfig struct {
	// Dir names an output directory for pattern/metrics files; commands
	// take output_dir as a positional argument and do not read it.
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from configPath (YAML/JSON/TOML, detected by
// extension). An empty configPath or a missing file is not an error:
// Load falls back to the built-in defaults below in that case.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				fmt.Fprintf(os.Stderr, "config file %s not found, using defaults\n", configPath)
			} else if os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "config file %s not found, using defaults\n", configPath)
			} else {
				return nil, fmt.Errorf("config: read %s: %w", configPath, err)
			}
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mining.reservoir_size", 1000)
	v.SetDefault("mining.runs", 1)
	v.SetDefault("mining.seed", 0)
	v.SetDefault("output.dir", "./output")
}

// Validate rejects configuration values that no mining.Session or CLI
// command could use.
func (c *Config) Validate() error {
	if c.Mining.ReservoirSize <= 0 {
		return fmt.Errorf("mining.reservoir_size must be positive, got %d", c.Mining.ReservoirSize)
	}
	if c.Mining.Runs <= 0 {
		return fmt.Errorf("mining.runs must be positive, got %d", c.Mining.Runs)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	return nil
}
