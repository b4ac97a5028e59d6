package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Mining.ReservoirSize)
	assert.Equal(t, 1, cfg.Mining.Runs)
	assert.Equal(t, int64(0), cfg.Mining.Seed)
	assert.Equal(t, "./output", cfg.Output.Dir)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Mining.ReservoirSize)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "mining:\n  reservoir_size: 500\n  runs: 10\n  seed: 42\noutput:\n  dir: /tmp/runs\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Mining.ReservoirSize)
	assert.Equal(t, 10, cfg.Mining.Runs)
	assert.Equal(t, int64(42), cfg.Mining.Seed)
	assert.Equal(t, "/tmp/runs", cfg.Output.Dir)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &config.Config{
		Mining: config.MiningConfig{ReservoirSize: 0, Runs: 1},
		Output: config.OutputConfig{Dir: "./out"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Mining.ReservoirSize = 10
	cfg.Mining.Runs = 0
	assert.Error(t, cfg.Validate())

	cfg.Mining.Runs = 1
	cfg.Output.Dir = ""
	assert.Error(t, cfg.Validate())

	cfg.Output.Dir = "./out"
	assert.NoError(t, cfg.Validate())
}
