package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for metric-store misuse.
var (
	// ErrMetricExists indicates RegisterMetric was called twice for the same name.
	ErrMetricExists = errors.New("metrics: metric already registered")

	// ErrMetricNotFound indicates Record/Extract was called for an unregistered name.
	ErrMetricNotFound = errors.New("metrics: metric not registered")
)

// MetricStore is a collection of named, append-only float64 series.
type MetricStore struct {
	order  []string
	series map[string][]float64
}

// NewMetricStore returns an empty store with the given series
// pre-registered, in the order given.
func NewMetricStore(names ...string) *MetricStore {
	s := &MetricStore{series: make(map[string][]float64)}
	for _, name := range names {
		_ = s.RegisterMetric(name)
	}
	return s
}

// RegisterMetric declares a new named series. Returns ErrMetricExists
// if name is already registered.
func (s *MetricStore) RegisterMetric(name string) error {
	if _, ok := s.series[name]; ok {
		return ErrMetricExists
	}
	s.series[name] = nil
	s.order = append(s.order, name)
	return nil
}

// Record appends value to the named series. Returns ErrMetricNotFound
// if name was never registered.
func (s *MetricStore) Record(name string, value float64) error {
	if _, ok := s.series[name]; !ok {
		return ErrMetricNotFound
	}
	s.series[name] = append(s.series[name], value)
	return nil
}

// Extract returns the recorded values for name, or nil if unregistered.
func (s *MetricStore) Extract(name string) []float64 {
	return s.series[name]
}

// WriteCSV renders every registered series as a CSV with one column
// per series (in registration order) and one row per recorded index;
// series of unequal length are padded with empty cells.
func (s *MetricStore) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ' '
	defer cw.Flush()

	names := make([]string, len(s.order))
	copy(names, s.order)

	if err := cw.Write(names); err != nil {
		return err
	}

	maxLen := 0
	for _, name := range names {
		if n := len(s.series[name]); n > maxLen {
			maxLen = n
		}
	}

	row := make([]string, len(names))
	for i := 0; i < maxLen; i++ {
		for j, name := range names {
			vals := s.series[name]
			if i < len(vals) {
				row[j] = fmt.Sprintf("%g", vals[i])
			} else {
				row[j] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
