package patterns

import (
	"math"
	"time"

	"lerian-cx-insights/internal/types"
)

// Engagement levels derived from the composite score.
const (
	EngagementLevelHigh   = "high"
	EngagementLevelMedium = "medium"
	EngagementLevelLow    = "low"
)

// Engagement trend directions over the supplied batch order.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Engagement is the weighted composite of interaction frequency, recency,
// channel diversity, and content richness for one customer.
type Engagement struct {
	Score            float64 `json:"score"`
	Level            string  `json:"level"`
	InteractionCount int     `json:"interaction_count"`
	Trend            string  `json:"trend"`
}

// CalculateEngagementScore scores a customer's engagement from four clamped
// sub-scores: frequency saturates at 50 interactions, recency decays to zero
// over 30 days since the most recent timestamp, diversity saturates at 3
// distinct channels, and richness normalizes average content length against
// 200 characters. Batches with no textual content get a neutral 0.5 richness
// so non-text channels are not penalized. Callers must supply interactions in
// chronological order for the trend to be meaningful. An empty batch yields
// the documented zero-engagement default.
func CalculateEngagementScore(interactions []types.Interaction) Engagement {
	if len(interactions) == 0 {
		return Engagement{
			Score:            0.0,
			Level:            EngagementLevelLow,
			InteractionCount: 0,
			Trend:            TrendStable,
		}
	}

	count := len(interactions)

	// Factor 1: interaction frequency, 50+ interactions saturate the score.
	frequencyScore := math.Min(1.0, float64(count)/50.0)

	// Factor 2: recency of the most recent timestamp, 30-day decay.
	recencyScore := 0.0
	var mostRecent time.Time
	for i := range interactions {
		if interactions[i].HasTimestamp() && interactions[i].Timestamp.After(mostRecent) {
			mostRecent = interactions[i].Timestamp
		}
	}
	if !mostRecent.IsZero() {
		daysSince := math.Floor(time.Since(mostRecent).Hours() / 24.0)
		recencyScore = math.Max(0.0, 1.0-daysSince/30.0)
	}

	// Factor 3: channel diversity, 3+ distinct channels saturate the score.
	channels := make(map[string]struct{})
	for i := range interactions {
		if interactions[i].Channel != "" {
			channels[interactions[i].Channel] = struct{}{}
		}
	}
	diversityScore := math.Min(1.0, float64(len(channels))/3.0)

	// Factor 4: content richness, 200+ average characters saturate the score.
	richnessScore := 0.5 // neutral for non-text channels
	contentLengths := make([]float64, 0, count)
	for i := range interactions {
		if interactions[i].Content != "" {
			contentLengths = append(contentLengths, float64(len(interactions[i].Content)))
		}
	}
	if len(contentLengths) > 0 {
		richnessScore = math.Min(1.0, mean(contentLengths)/200.0)
	}

	score := weightedScore(
		[]float64{frequencyScore, clamp01(recencyScore), diversityScore, richnessScore},
		[]float64{0.35, 0.30, 0.20, 0.15},
	)

	level := EngagementLevelLow
	switch {
	case score >= 0.7:
		level = EngagementLevelHigh
	case score >= 0.4:
		level = EngagementLevelMedium
	}

	// Trend compares interaction volume in the first and second halves of
	// the supplied list.
	trend := TrendStable
	if count >= minTrendSamples {
		firstHalf := float64(count / 2)
		secondHalf := float64(count - count/2)
		switch {
		case secondHalf > firstHalf*1.2:
			trend = TrendIncreasing
		case secondHalf < firstHalf*0.8:
			trend = TrendDecreasing
		}
	}

	return Engagement{
		Score:            score,
		Level:            level,
		InteractionCount: count,
		Trend:            trend,
	}
}
