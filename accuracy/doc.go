// Package accuracy provides the calculations used to size a reservoir
// and to judge how well a sampled pattern distribution tracks an exact
// one: CalculateTk (exhaustive enumeration of distinct canonical
// subgraph patterns for small k/L/Q), CalculateM (the (ε,δ)-approximation
// reservoir-size formula), and Precision/Recall/AverageRelativeError
// over two frequency-thresholded pattern sets.
package accuracy
