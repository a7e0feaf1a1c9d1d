package sentiment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerian-cx-insights/internal/config"
	"lerian-cx-insights/internal/types"
)

func testClassifier() *LexiconClassifier {
	return NewLexiconClassifier(config.SentimentConfig{
		MaxTextLength:  10000,
		TruncateLength: 1000,
		BatchSize:      32,
		SLAMillis:      500,
	}, nil)
}

func TestPredict_Positive(t *testing.T) {
	c := testClassifier()

	pred, err := c.Predict(context.Background(), "great service, excellent and helpful agent")
	require.NoError(t, err)

	assert.Equal(t, types.SentimentPositive, pred.Sentiment)
	// 3 positive hits with one smoothing count: 3/4.
	assert.InDelta(t, 0.75, pred.Confidence, 1e-9)
	assert.InDelta(t, 0.75, pred.Scores.Positive, 1e-9)
	assert.InDelta(t, 0.25, pred.Scores.Neutral, 1e-9)
}

func TestPredict_Negative(t *testing.T) {
	c := testClassifier()

	pred, err := c.Predict(context.Background(), "terrible experience, the app is broken and support failed")
	require.NoError(t, err)

	assert.Equal(t, types.SentimentNegative, pred.Sentiment)
	assert.Greater(t, pred.Scores.Negative, pred.Scores.Positive)
}

func TestPredict_NeutralWithoutLexiconHits(t *testing.T) {
	c := testClassifier()

	pred, err := c.Predict(context.Background(), "the order shipped on tuesday")
	require.NoError(t, err)

	assert.Equal(t, types.SentimentNeutral, pred.Sentiment)
	assert.InDelta(t, 1.0, pred.Confidence, 1e-9)
}

func TestPredict_ScoresSumToOne(t *testing.T) {
	c := testClassifier()

	texts := []string{
		"great but slow",
		"thanks, the refund failed though",
		"nothing to report",
	}
	for _, text := range texts {
		pred, err := c.Predict(context.Background(), text)
		require.NoError(t, err)

		sum := pred.Scores.Positive + pred.Scores.Negative + pred.Scores.Neutral
		assert.InDelta(t, 1.0, sum, 1e-9, "scores for %q must sum to 1", text)
	}
}

func TestPredict_TrimsPunctuationAroundWords(t *testing.T) {
	c := testClassifier()

	pred, err := c.Predict(context.Background(), "great! 'helpful' thanks.")
	require.NoError(t, err)

	assert.Equal(t, types.SentimentPositive, pred.Sentiment)
	// All three words hit the lexicon despite the punctuation: 3/4.
	assert.InDelta(t, 0.75, pred.Scores.Positive, 1e-9)
}

func TestPredict_RejectsInvalidInput(t *testing.T) {
	c := testClassifier()

	_, err := c.Predict(context.Background(), "")
	assert.Error(t, err)

	_, err = c.Predict(context.Background(), strings.Repeat("x", 10001))
	assert.Error(t, err)

	_, err = c.Predict(context.Background(), "   ")
	assert.Error(t, err)
}

func TestBatchPredict_PreservesOrderAndDegrades(t *testing.T) {
	c := testClassifier()

	results := c.BatchPredict(context.Background(), []string{
		"excellent support, thanks",
		"",
		"worst experience, very disappointed",
	})
	require.Len(t, results, 3)

	assert.Equal(t, types.SentimentPositive, results[0].Sentiment)
	assert.Empty(t, results[0].Error)

	// The invalid text degrades to neutral instead of failing the batch.
	assert.Equal(t, types.SentimentNeutral, results[1].Sentiment)
	assert.Equal(t, 0.0, results[1].Confidence)
	assert.NotEmpty(t, results[1].Error)

	assert.Equal(t, types.SentimentNegative, results[2].Sentiment)
}

func TestBatchPredict_EmptyInput(t *testing.T) {
	c := testClassifier()

	results := c.BatchPredict(context.Background(), nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestBatchPredict_SmallBatchSize(t *testing.T) {
	c := NewLexiconClassifier(config.SentimentConfig{
		MaxTextLength:  10000,
		TruncateLength: 1000,
		BatchSize:      2,
		SLAMillis:      500,
	}, nil)

	texts := []string{"great", "bad", "fine", "love it", "broken again"}
	results := c.BatchPredict(context.Background(), texts)

	require.Len(t, results, len(texts))
	assert.Equal(t, types.SentimentPositive, results[0].Sentiment)
	assert.Equal(t, types.SentimentNegative, results[1].Sentiment)
	assert.Equal(t, types.SentimentNeutral, results[2].Sentiment)
	assert.Equal(t, types.SentimentPositive, results[3].Sentiment)
	assert.Equal(t, types.SentimentNegative, results[4].Sentiment)
}
