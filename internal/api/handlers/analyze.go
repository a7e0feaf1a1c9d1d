package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"lerian-cx-insights/internal/api/response"
	"lerian-cx-insights/internal/logging"
	"lerian-cx-insights/internal/patterns"
	"lerian-cx-insights/internal/sentiment"
	"lerian-cx-insights/internal/types"
)

// maxAnalyzeBatch bounds the accepted batch size; the engine expects tens to
// low hundreds of interactions, not streaming volumes.
const maxAnalyzeBatch = 1000

// AnalyzeHandler runs the pattern detection engine over a single customer's
// interaction batch. It is the ingestion boundary: timestamps are parsed and
// validated here, the batch is sorted chronologically, and only then handed
// to the engine.
type AnalyzeHandler struct {
	engine     *patterns.Engine
	classifier sentiment.Classifier
	logger     logging.Logger
}

// NewAnalyzeHandler creates an analysis handler. The classifier is the
// injected sentiment collaborator; it may be nil when sentiment backfill is
// not wanted.
func NewAnalyzeHandler(engine *patterns.Engine, classifier sentiment.Classifier, logger logging.Logger) *AnalyzeHandler {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &AnalyzeHandler{
		engine:     engine,
		classifier: classifier,
		logger:     logger.WithComponent("analyze-handler"),
	}
}

// AnalyzeRequest is the request body for pattern analysis. Interactions must
// belong to one customer; the caller is responsible for any lookback-window
// filtering.
type AnalyzeRequest struct {
	CustomerID   string              `json:"customer_id"`
	Interactions []types.Interaction `json:"interactions"`
	// ClassifyMissing backfills sentiment via the injected classifier for
	// interactions that carry content but no sentiment.
	ClassifyMissing bool `json:"classify_missing,omitempty"`
}

// AnalyzeResponse carries the ranked patterns plus the raw detector
// summaries for the presentation layer.
type AnalyzeResponse struct {
	CustomerID       string                           `json:"customer_id"`
	AnalysisID       string                           `json:"analysis_id"`
	Patterns         []types.Pattern                  `json:"patterns"`
	ChannelFrequency map[string]patterns.ChannelStats `json:"channel_frequency"`
	SentimentTrend   patterns.SentimentTrend          `json:"sentiment_trend"`
	TemporalPattern  *patterns.TemporalPattern        `json:"temporal_pattern,omitempty"`
	Engagement       patterns.Engagement              `json:"engagement"`
	InteractionCount int                              `json:"interaction_count"`
	AnalyzedAt       time.Time                        `json:"analyzed_at"`
}

// Handle processes POST /api/v1/patterns/analyze.
func (h *AnalyzeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnalyzeRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		response.WriteBadRequest(w, "Invalid request body", err.Error())
		return
	}

	if req.CustomerID == "" {
		response.WriteValidationError(w, "customer_id is required")
		return
	}
	if len(req.Interactions) > maxAnalyzeBatch {
		response.WriteValidationError(w, "too many interactions",
			"batch size is limited to 1000 interactions per analysis")
		return
	}

	interactions := req.Interactions

	// The half-split trend heuristics assume chronological order, so sort
	// here rather than trusting the caller. Interactions without a
	// timestamp sort first; the stable sort keeps their relative order.
	sort.SliceStable(interactions, func(i, j int) bool {
		return interactions[i].Timestamp.Before(interactions[j].Timestamp)
	})

	if req.ClassifyMissing && h.classifier != nil {
		h.backfillSentiment(r, interactions)
	}

	detected := h.engine.DetectPatterns(ctx, interactions)

	resp := AnalyzeResponse{
		CustomerID:       req.CustomerID,
		AnalysisID:       uuid.New().String(),
		Patterns:         detected,
		ChannelFrequency: patterns.CalculateChannelFrequency(interactions),
		SentimentTrend:   patterns.AnalyzeSentimentTrend(interactions),
		TemporalPattern:  patterns.DetectTemporalPattern(interactions),
		Engagement:       patterns.CalculateEngagementScore(interactions),
		InteractionCount: len(interactions),
		AnalyzedAt:       time.Now().UTC(),
	}

	h.logger.InfoContext(ctx, "analysis complete",
		"customer_id", req.CustomerID,
		"analysis_id", resp.AnalysisID,
		"interactions", len(interactions),
		"patterns", len(detected),
	)

	response.WriteSuccess(w, resp)
}

// backfillSentiment classifies content-bearing interactions that arrived
// without a sentiment. Classification failures leave the interaction
// unscored rather than failing the analysis.
func (h *AnalyzeHandler) backfillSentiment(r *http.Request, interactions []types.Interaction) {
	ctx := r.Context()
	for i := range interactions {
		it := &interactions[i]
		if it.Sentiment != nil || it.Content == "" {
			continue
		}
		prediction, err := h.classifier.Predict(ctx, it.Content)
		if err != nil {
			h.logger.WarnContext(ctx, "sentiment backfill failed",
				"interaction_id", it.ID, "error", err)
			continue
		}
		it.Sentiment = &types.Sentiment{
			Label:    prediction.Sentiment,
			Positive: prediction.Scores.Positive,
			Negative: prediction.Scores.Negative,
			Neutral:  prediction.Scores.Neutral,
		}
	}
}

// decodeJSON strictly decodes a JSON request body. Unknown fields and
// trailing data are rejected so malformed timestamps or misspelled fields
// surface at the boundary instead of silently degrading the analysis.
func decodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
