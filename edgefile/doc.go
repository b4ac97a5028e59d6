// Package edgefile reads and writes the line-delimited edge-stream
// format used to feed and record a mining session: one edge per line,
// "u l_u v l_v label" (whitespace-separated, matching the reference
// tool's edge-file writer), plus CSV writers for discovered pattern
// counts.
package edgefile
