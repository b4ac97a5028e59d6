package accuracy

// PatternFrequencies converts raw pattern counts into relative
// frequencies (each count divided by the total count across all
// patterns). Negative counts (possible mid-event in the dynamic
// mining algorithms, before a removal's decrements and an insertion's
// increments have both landed) are clipped to zero before the ratio
// is taken.
func PatternFrequencies(counts map[string]int) map[string]float64 {
	total := 0
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	freqs := make(map[string]float64, len(counts))
	if total == 0 {
		return freqs
	}
	for pattern, c := range counts {
		if c <= 0 {
			continue
		}
		freqs[pattern] = float64(c) / float64(total)
	}
	return freqs
}

// ThresholdFrequencies filters pattern frequencies to those at or
// above tau.
func ThresholdFrequencies(freqs map[string]float64, tau float64) map[string]float64 {
	out := make(map[string]float64)
	for pattern, freq := range freqs {
		if freq >= tau {
			out[pattern] = freq
		}
	}
	return out
}

// Precision returns the fraction of sampledPatterns that also appear
// in exactPatterns, defined as 1 when sampledPatterns is empty and
// exactPatterns is also empty.
func Precision(exactPatterns, sampledPatterns map[string]float64) float64 {
	if len(sampledPatterns) == 0 {
		if len(exactPatterns) == 0 {
			return 1
		}
		return 0
	}

	hits := 0
	for pattern := range sampledPatterns {
		if _, ok := exactPatterns[pattern]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(sampledPatterns))
}

// Recall returns the fraction of exactPatterns that also appear in
// sampledPatterns, defined as 1 when exactPatterns is empty and
// sampledPatterns is also empty.
func Recall(exactPatterns, sampledPatterns map[string]float64) float64 {
	if len(exactPatterns) == 0 {
		if len(sampledPatterns) == 0 {
			return 1
		}
		return 0
	}

	hits := 0
	for pattern := range exactPatterns {
		if _, ok := sampledPatterns[pattern]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(exactPatterns))
}

// AverageRelativeError returns the sum, over every pattern in
// exactPatterns, of the absolute relative difference between its
// exact and sampled frequency (0 if absent from sampledPatterns),
// divided by tk (the total number of possible patterns).
func AverageRelativeError(exactPatterns, sampledPatterns map[string]float64, tk int) float64 {
	var are float64
	for pattern, pi := range exactPatterns {
		qi := sampledPatterns[pattern]
		are += absFloat(qi-pi) / pi
	}
	return are / float64(tk)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
