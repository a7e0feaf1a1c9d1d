package patterns

import (
	"lerian-cx-insights/internal/types"
)

// Trend directions shared by the sentiment and engagement detectors.
const (
	DirectionImproving = "improving"
	DirectionDeclining = "declining"
	DirectionStable    = "stable"
)

// minTrendSamples is the minimum number of scored interactions required
// before a half-split trend comparison is meaningful.
const minTrendSamples = 4

// SentimentTrend summarizes the sentiment carried by a batch: the most
// frequent label, how consistently it appears, the average polarity, and the
// trend direction over the supplied order.
type SentimentTrend struct {
	Dominant    string  `json:"dominant"`
	Consistency float64 `json:"consistency"`
	Average     float64 `json:"average"`
	Direction   string  `json:"direction"`

	// ScoredCount and DominantCount expose how many interactions actually
	// carried a sentiment and how many of those matched the dominant label.
	ScoredCount   int `json:"scored_count"`
	DominantCount int `json:"dominant_count"`
}

// neutralTrend is the documented default when nothing can be scored.
func neutralTrend() SentimentTrend {
	return SentimentTrend{
		Dominant:    types.SentimentNeutral,
		Consistency: 0.0,
		Average:     0.0,
		Direction:   DirectionStable,
	}
}

// AnalyzeSentimentTrend reduces each interaction's sentiment to a canonical
// label and a numeric polarity, then reports the dominant label, its
// consistency, the average polarity, and the half-split trend direction.
// Interactions without a sentiment are excluded from scoring. Callers must
// supply interactions in chronological order for the direction to be
// meaningful.
//
// When two labels are equally frequent, the lexicographically smallest label
// wins; the rule is arbitrary but deterministic.
func AnalyzeSentimentTrend(interactions []types.Interaction) SentimentTrend {
	if len(interactions) == 0 {
		return neutralTrend()
	}

	labelCounts := make(map[string]int)
	polarities := make([]float64, 0, len(interactions))
	for i := range interactions {
		label := interactions[i].SentimentLabel()
		if label == "" {
			continue
		}
		labelCounts[label]++
		polarities = append(polarities, types.Polarity(label))
	}

	scored := len(polarities)
	if scored == 0 {
		return neutralTrend()
	}

	dominant := ""
	dominantCount := 0
	for label, count := range labelCounts {
		if count > dominantCount || (count == dominantCount && label < dominant) {
			dominant = label
			dominantCount = count
		}
	}

	direction := DirectionStable
	if scored >= minTrendSamples {
		mid := scored / 2
		diff := mean(polarities[mid:]) - mean(polarities[:mid])
		switch {
		case diff > 0.2:
			direction = DirectionImproving
		case diff < -0.2:
			direction = DirectionDeclining
		}
	}

	return SentimentTrend{
		Dominant:      dominant,
		Consistency:   clamp01(float64(dominantCount) / float64(scored)),
		Average:       clamp(mean(polarities), -1.0, 1.0),
		Direction:     direction,
		ScoredCount:   scored,
		DominantCount: dominantCount,
	}
}
