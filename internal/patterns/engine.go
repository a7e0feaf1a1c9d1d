package patterns

import (
	"context"
	"fmt"
	"sort"

	"lerian-cx-insights/internal/logging"
	"lerian-cx-insights/internal/types"
)

// Default aggregation thresholds. Detection on fewer than defaultMinBatchSize
// interactions is statistically meaningless; signals below the confidence
// floor are never surfaced.
const (
	defaultMinBatchSize    = 5
	defaultConfidenceFloor = 0.7
)

// Engine runs the four behavioral detectors over one customer's interaction
// batch and aggregates their qualifying results into ranked Pattern records.
// The engine is stateless and safe for concurrent use; each call is an
// independent, synchronous computation over its input.
type Engine struct {
	minBatchSize    int
	confidenceFloor float64
	logger          logging.Logger
}

// NewEngine creates a pattern detection engine with the default thresholds.
func NewEngine(logger logging.Logger) *Engine {
	return NewEngineWithThresholds(defaultMinBatchSize, defaultConfidenceFloor, logger)
}

// NewEngineWithThresholds creates an engine with explicit thresholds.
// Non-positive or out-of-range values fall back to the defaults.
func NewEngineWithThresholds(minBatchSize int, confidenceFloor float64, logger logging.Logger) *Engine {
	if minBatchSize <= 0 {
		minBatchSize = defaultMinBatchSize
	}
	if confidenceFloor <= 0 || confidenceFloor > 1 {
		confidenceFloor = defaultConfidenceFloor
	}
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &Engine{
		minBatchSize:    minBatchSize,
		confidenceFloor: confidenceFloor,
		logger:          logger.WithComponent("pattern-engine"),
	}
}

// DetectPatterns analyzes a single customer's interaction batch and returns
// the qualifying patterns sorted by confidence descending (stable on ties).
// Batches smaller than the minimum size short-circuit to an empty list.
// Well-formed input never fails; insufficient data is a normal outcome.
func (e *Engine) DetectPatterns(ctx context.Context, interactions []types.Interaction) []types.Pattern {
	patterns := make([]types.Pattern, 0, 4)
	if len(interactions) < e.minBatchSize {
		e.logger.DebugContext(ctx, "batch below minimum size, skipping detection",
			"batch_size", len(interactions), "min_batch_size", e.minBatchSize)
		return patterns
	}

	patterns = append(patterns, e.channelPatterns(interactions)...)
	if p := e.sentimentPattern(interactions); p != nil {
		patterns = append(patterns, *p)
	}
	if p := e.temporalPattern(interactions); p != nil {
		patterns = append(patterns, *p)
	}
	if p := e.engagementPattern(interactions); p != nil {
		patterns = append(patterns, *p)
	}

	// Re-filter on the confidence floor in case a detector ever produces a
	// borderline score, then rank. The sort must be stable so ties retain
	// emission order.
	qualified := patterns[:0]
	for _, p := range patterns {
		if p.Confidence >= e.confidenceFloor {
			qualified = append(qualified, p)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Confidence > qualified[j].Confidence
	})

	e.logger.DebugContext(ctx, "pattern detection complete",
		"batch_size", len(interactions), "patterns", len(qualified))

	return qualified
}

// channelPatterns converts qualifying channel frequency results into
// patterns. Channels are visited in name order so the pre-sort emission
// order is deterministic.
func (e *Engine) channelPatterns(interactions []types.Interaction) []types.Pattern {
	stats := CalculateChannelFrequency(interactions)

	channels := make([]string, 0, len(stats))
	for channel := range stats {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	patterns := make([]types.Pattern, 0, len(channels))
	for _, channel := range channels {
		cs := stats[channel]
		if cs.Count < minChannelOccurrences || cs.Regularity <= e.confidenceFloor {
			continue
		}
		patterns = append(patterns, types.Pattern{
			Type:       types.PatternTypeChannelFrequency,
			Confidence: cs.Regularity,
			Frequency:  cs.Count,
			Description: fmt.Sprintf("Customer regularly uses the %s channel (about every %.1f hours)",
				channel, cs.AvgInterval),
			Metadata: map[string]any{
				"channel":            channel,
				"count":              cs.Count,
				"avg_interval_hours": cs.AvgInterval,
			},
		})
	}
	return patterns
}

// sentimentPattern converts a sufficiently consistent sentiment trend into a
// pattern, or returns nil.
func (e *Engine) sentimentPattern(interactions []types.Interaction) *types.Pattern {
	trend := AnalyzeSentimentTrend(interactions)
	if trend.Consistency <= e.confidenceFloor {
		return nil
	}
	return &types.Pattern{
		Type:       types.PatternTypeSentimentTrend,
		Confidence: trend.Consistency,
		Frequency:  trend.DominantCount,
		Description: fmt.Sprintf("Customer sentiment is consistently %s (%s)",
			trend.Dominant, trend.Direction),
		Metadata: map[string]any{
			"dominant":    trend.Dominant,
			"consistency": trend.Consistency,
			"average":     trend.Average,
			"direction":   trend.Direction,
		},
	}
}

// temporalPattern converts a detected temporal cluster into a pattern, or
// returns nil when no cluster qualified.
func (e *Engine) temporalPattern(interactions []types.Interaction) *types.Pattern {
	tp := DetectTemporalPattern(interactions)
	if tp == nil || tp.Confidence <= e.confidenceFloor {
		return nil
	}
	return &types.Pattern{
		Type:        tp.Type,
		Confidence:  tp.Confidence,
		Frequency:   tp.Occurrences,
		Description: tp.Description,
		Metadata:    tp.Metadata,
	}
}

// engagementPattern converts a high engagement score into a pattern, or
// returns nil.
func (e *Engine) engagementPattern(interactions []types.Interaction) *types.Pattern {
	eng := CalculateEngagementScore(interactions)
	if eng.Score <= e.confidenceFloor {
		return nil
	}
	return &types.Pattern{
		Type:       types.PatternTypeEngagement,
		Confidence: eng.Score,
		Frequency:  eng.InteractionCount,
		Description: fmt.Sprintf("Customer shows %s engagement (%s)",
			eng.Level, eng.Trend),
		Metadata: map[string]any{
			"level": eng.Level,
			"trend": eng.Trend,
			"score": eng.Score,
		},
	}
}
