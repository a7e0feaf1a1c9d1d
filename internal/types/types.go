// Package types defines the core data model shared by the pattern detection
// engine and the API layer: customer interactions, sentiment values, and the
// behavioral patterns the engine surfaces.
package types

import (
	"encoding/json"
	"time"
)

// Sentiment labels produced by the classifier and consumed by the engine.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Pattern type tags emitted by the aggregation engine.
const (
	PatternTypeChannelFrequency = "channel_frequency"
	PatternTypeSentimentTrend   = "sentiment_trend"
	PatternTypeDayOfWeek        = "day_of_week"
	PatternTypeTimeOfDay        = "time_of_day"
	PatternTypeEngagement       = "engagement"
)

// Sentiment represents the sentiment attached to an interaction. It accepts
// two wire shapes transparently: a bare label string, or a structured record
// with the label plus per-class scores.
type Sentiment struct {
	Label    string  `json:"label"`
	Positive float64 `json:"positive,omitempty"`
	Negative float64 `json:"negative,omitempty"`
	Neutral  float64 `json:"neutral,omitempty"`
}

// UnmarshalJSON decodes either a bare label ("positive") or a structured
// sentiment object ({"label": "positive", "positive": 0.91, ...}).
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*s = Sentiment{Label: label}
		return nil
	}

	type alias Sentiment
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Sentiment(a)
	return nil
}

// NormalizeLabel reduces an arbitrary sentiment label to one of the three
// canonical labels. Anything that is not positive or negative counts as
// neutral.
func NormalizeLabel(label string) string {
	switch label {
	case SentimentPositive, SentimentNegative:
		return label
	default:
		return SentimentNeutral
	}
}

// Polarity converts a sentiment label to its numeric polarity:
// positive = +1, negative = -1, everything else = 0.
func Polarity(label string) float64 {
	switch label {
	case SentimentPositive:
		return 1.0
	case SentimentNegative:
		return -1.0
	default:
		return 0.0
	}
}

// Interaction is a single timestamped customer touchpoint. The engine treats
// interactions as immutable input; channel, sentiment, and content are
// optional and their absence excludes the interaction from the detectors that
// need them. A zero Timestamp means the timestamp is missing.
type Interaction struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Channel   string     `json:"channel,omitempty"`
	Sentiment *Sentiment `json:"sentiment,omitempty"`
	Content   string     `json:"content,omitempty"`
}

// HasTimestamp reports whether the interaction carries a usable timestamp.
func (i *Interaction) HasTimestamp() bool {
	return !i.Timestamp.IsZero()
}

// SentimentLabel returns the normalized sentiment label, or "" when the
// interaction carries no sentiment at all.
func (i *Interaction) SentimentLabel() string {
	if i.Sentiment == nil {
		return ""
	}
	return NormalizeLabel(i.Sentiment.Label)
}

// Pattern is a behavioral signal surfaced by the aggregation engine. It is
// constructed once from a qualifying detector result and never mutated
// afterwards. Confidence is always within [0,1] and Frequency is a positive
// occurrence count. Metadata semantics vary by Type.
type Pattern struct {
	Type        string         `json:"pattern_type"`
	Confidence  float64        `json:"confidence"`
	Frequency   int            `json:"frequency"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
}
