package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentimentUnmarshal_BareLabel(t *testing.T) {
	var s Sentiment
	require.NoError(t, json.Unmarshal([]byte(`"positive"`), &s))

	assert.Equal(t, SentimentPositive, s.Label)
	assert.Zero(t, s.Positive)
}

func TestSentimentUnmarshal_StructuredObject(t *testing.T) {
	var s Sentiment
	require.NoError(t, json.Unmarshal([]byte(`{"label":"negative","negative":0.88,"positive":0.02,"neutral":0.1}`), &s))

	assert.Equal(t, SentimentNegative, s.Label)
	assert.InDelta(t, 0.88, s.Negative, 1e-9)
	assert.InDelta(t, 0.02, s.Positive, 1e-9)
}

func TestSentimentUnmarshal_Invalid(t *testing.T) {
	var s Sentiment
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestInteractionUnmarshal_BothSentimentShapes(t *testing.T) {
	payload := `[
		{"id": "a", "timestamp": "2025-01-06T10:00:00Z", "channel": "web", "sentiment": "neutral"},
		{"id": "b", "timestamp": "2025-01-07T10:00:00Z", "sentiment": {"label": "positive", "positive": 0.9}},
		{"id": "c", "channel": "phone"}
	]`

	var interactions []Interaction
	require.NoError(t, json.Unmarshal([]byte(payload), &interactions))
	require.Len(t, interactions, 3)

	assert.Equal(t, SentimentNeutral, interactions[0].SentimentLabel())
	assert.Equal(t, SentimentPositive, interactions[1].SentimentLabel())
	assert.InDelta(t, 0.9, interactions[1].Sentiment.Positive, 1e-9)

	assert.True(t, interactions[0].HasTimestamp())
	assert.False(t, interactions[2].HasTimestamp())
	assert.Equal(t, "", interactions[2].SentimentLabel())
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, SentimentPositive, NormalizeLabel("positive"))
	assert.Equal(t, SentimentNegative, NormalizeLabel("negative"))
	assert.Equal(t, SentimentNeutral, NormalizeLabel("neutral"))
	assert.Equal(t, SentimentNeutral, NormalizeLabel("angry"))
	assert.Equal(t, SentimentNeutral, NormalizeLabel(""))
	assert.Equal(t, SentimentNeutral, NormalizeLabel("Positive"))
}

func TestPolarity(t *testing.T) {
	assert.Equal(t, 1.0, Polarity(SentimentPositive))
	assert.Equal(t, -1.0, Polarity(SentimentNegative))
	assert.Equal(t, 0.0, Polarity(SentimentNeutral))
	assert.Equal(t, 0.0, Polarity("confused"))
}

func TestPatternMarshal(t *testing.T) {
	p := Pattern{
		Type:        PatternTypeChannelFrequency,
		Confidence:  0.93,
		Frequency:   12,
		Description: "Customer regularly uses the web channel",
		Metadata:    map[string]any{"channel": "web"},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pattern_type":"channel_frequency"`)
	assert.Contains(t, string(data), `"confidence":0.93`)
}

func TestInteractionHasTimestamp(t *testing.T) {
	withTS := Interaction{Timestamp: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)}
	assert.True(t, withTS.HasTimestamp())

	var zero Interaction
	assert.False(t, zero.HasTimestamp())
}
