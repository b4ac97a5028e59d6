package metrics_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subgraphfsm/metrics"
)

func TestMetricStore_RecordAndExtract(t *testing.T) {
	s := metrics.NewMetricStore("a", "b")
	require.NoError(t, s.Record("a", 1.5))
	require.NoError(t, s.Record("a", 2.5))

	assert.Equal(t, []float64{1.5, 2.5}, s.Extract("a"))
	assert.Nil(t, s.Extract("b"))
}

func TestMetricStore_RecordUnregisteredFails(t *testing.T) {
	s := metrics.NewMetricStore("a")
	err := s.Record("missing", 1)
	assert.ErrorIs(t, err, metrics.ErrMetricNotFound)
}

func TestMetricStore_RegisterTwiceFails(t *testing.T) {
	s := metrics.NewMetricStore("a")
	err := s.RegisterMetric("a")
	assert.ErrorIs(t, err, metrics.ErrMetricExists)
}

func TestMetricStore_WriteCSV_PadsUnequalSeries(t *testing.T) {
	s := metrics.NewMetricStore("a", "b")
	require.NoError(t, s.Record("a", 1))
	require.NoError(t, s.Record("a", 2))
	require.NoError(t, s.Record("b", 9))

	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf))

	lines := buf.String()
	assert.Contains(t, lines, "a b\n")
	assert.Contains(t, lines, "1 9\n")
	assert.Contains(t, lines, "2 \n")
}
