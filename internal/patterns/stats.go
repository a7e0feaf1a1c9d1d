// Package patterns implements the behavioral pattern detection engine for
// customer interaction batches: channel frequency, sentiment trend, temporal
// clustering, engagement scoring, and confidence-based aggregation.
package patterns

import (
	"math"
	"time"
)

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the sample standard deviation of values. It needs at least
// two values; anything less yields 0.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// clamp bounds v to the [lo, hi] interval.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 bounds a score or confidence value to [0,1].
func clamp01(v float64) float64 {
	return clamp(v, 0.0, 1.0)
}

// intervalsHours computes the successive gaps, in hours, between
// ascending-sorted timestamps.
func intervalsHours(sorted []time.Time) []float64 {
	if len(sorted) < 2 {
		return nil
	}
	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i-1]).Hours())
	}
	return gaps
}

// regularityScore converts a set of time gaps into a 0-1 regularity score
// using the inverse coefficient of variation: perfectly even spacing scores
// 1.0, and the score decays toward 0 as the spacing variance grows. Fewer
// than two gaps, or a non-positive mean gap, score 0.
func regularityScore(gaps []float64) (regularity, avgGap float64) {
	if len(gaps) < 2 {
		return 0.0, 0.0
	}
	avg := mean(gaps)
	if avg <= 0 {
		return 0.0, 0.0
	}
	cv := stdDev(gaps) / avg
	return clamp01(1.0 / (1.0 + cv)), avg
}

// weightedScore composes sub-scores into a single score using the given
// weights. Inputs must be pre-clamped to [0,1]; the result is clamped to the
// same range.
func weightedScore(values, weights []float64) float64 {
	score := 0.0
	for i := range values {
		score += values[i] * weights[i]
	}
	return clamp01(score)
}
