package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lerian-cx-insights/internal/config"
	"lerian-cx-insights/internal/logging"
	"lerian-cx-insights/internal/types"
)

// Scores holds the per-class probabilities of a prediction, normalized to
// sum to 1.
type Scores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Prediction is the result of classifying one text.
type Prediction struct {
	Sentiment        string  `json:"sentiment"`
	Confidence       float64 `json:"confidence"`
	Scores           Scores  `json:"scores"`
	ProcessingTimeMS float64 `json:"processing_time_ms"`
	Error            string  `json:"error,omitempty"`
}

// Classifier is the sentiment classification collaborator consumed by the
// API layer. Implementations are constructed explicitly and injected; the
// engine itself never touches a classifier.
type Classifier interface {
	Predict(ctx context.Context, text string) (*Prediction, error)
	BatchPredict(ctx context.Context, texts []string) []*Prediction
}

// LexiconClassifier scores text against positive and negative word lexicons.
// It is deterministic, requires no model loading, and is safe for concurrent
// use.
type LexiconClassifier struct {
	cfg    config.SentimentConfig
	logger logging.Logger

	positive map[string]struct{}
	negative map[string]struct{}
}

// NewLexiconClassifier creates a lexicon classifier with the built-in word
// lists.
func NewLexiconClassifier(cfg config.SentimentConfig, logger logging.Logger) *LexiconClassifier {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &LexiconClassifier{
		cfg:      cfg,
		logger:   logger.WithComponent("sentiment-classifier"),
		positive: wordSet(positiveWords),
		negative: wordSet(negativeWords),
	}
}

// Predict classifies a single text. The text is preprocessed, truncated to
// the configured length, and scored word by word; the per-class scores are
// normalized to sum to 1 and the top class becomes the label. Predictions
// slower than the configured SLA are logged as warnings.
func (c *LexiconClassifier) Predict(ctx context.Context, text string) (*Prediction, error) {
	start := time.Now()

	if !ValidateTextLength(text, c.cfg.MaxTextLength) {
		return nil, fmt.Errorf("text must be non-empty and at most %d characters", c.cfg.MaxTextLength)
	}

	processed, err := Preprocess(text)
	if err != nil {
		return nil, err
	}
	processed = Truncate(processed, c.cfg.TruncateLength)

	var positiveHits, negativeHits float64
	for _, word := range strings.Fields(processed) {
		word = strings.Trim(word, ".,!?;:'\"-")
		if _, ok := c.positive[word]; ok {
			positiveHits++
		} else if _, ok := c.negative[word]; ok {
			negativeHits++
		}
	}

	// Normalize with one neutral smoothing count so the scores always sum
	// to 1 and hit-free text comes out neutral.
	total := positiveHits + negativeHits + 1.0
	scores := Scores{
		Positive: positiveHits / total,
		Negative: negativeHits / total,
		Neutral:  1.0 / total,
	}

	label := types.SentimentNeutral
	confidence := scores.Neutral
	if scores.Positive > confidence {
		label = types.SentimentPositive
		confidence = scores.Positive
	}
	if scores.Negative > confidence {
		label = types.SentimentNegative
		confidence = scores.Negative
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	if c.cfg.SLAMillis > 0 && elapsed > float64(c.cfg.SLAMillis) {
		c.logger.WarnContext(ctx, "prediction exceeded SLA",
			"processing_time_ms", elapsed, "text_length", len(text))
	}

	return &Prediction{
		Sentiment:        label,
		Confidence:       confidence,
		Scores:           scores,
		ProcessingTimeMS: elapsed,
	}, nil
}

// BatchPredict classifies texts in batches of the configured size. A text
// that fails validation degrades to a zero-confidence neutral result
// carrying the error; the batch itself never fails.
func (c *LexiconClassifier) BatchPredict(ctx context.Context, texts []string) []*Prediction {
	if len(texts) == 0 {
		return []*Prediction{}
	}

	batchSize := c.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 32
	}

	results := make([]*Prediction, 0, len(texts))
	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		for _, text := range texts[i:end] {
			result, err := c.Predict(ctx, text)
			if err != nil {
				c.logger.ErrorContext(ctx, "failed to predict sentiment", "error", err)
				results = append(results, &Prediction{
					Sentiment:  types.SentimentNeutral,
					Confidence: 0.0,
					Scores:     Scores{Neutral: 1.0},
					Error:      err.Error(),
				})
				continue
			}
			results = append(results, result)
		}
	}

	return results
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Lexicons tuned for customer-support language.
var positiveWords = []string{
	"good", "great", "excellent", "amazing", "awesome", "fantastic",
	"wonderful", "love", "loved", "like", "liked", "happy", "pleased",
	"satisfied", "helpful", "thanks", "thank", "perfect", "best",
	"easy", "fast", "quick", "friendly", "smooth", "resolved", "works",
	"working", "appreciate", "impressed", "recommend",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate", "hated",
	"angry", "upset", "frustrated", "frustrating", "disappointed",
	"disappointing", "slow", "broken", "useless", "poor", "problem",
	"problems", "issue", "issues", "error", "errors", "fail", "failed",
	"failing", "wrong", "unacceptable", "refund", "cancel", "complaint",
}
