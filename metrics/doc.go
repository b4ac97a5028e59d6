// Package metrics provides a small named-series recorder used by the
// mining session to capture per-event measurements (timing, candidate
// counts, reservoir fullness) without committing to any particular
// storage or export format at the point of measurement.
//
// A MetricStore must have every series name registered before Record
// is called for it, matching the fail-fast style of the reference
// implementation: recording to an unregistered series is a caller bug,
// not a recoverable condition.
package metrics
