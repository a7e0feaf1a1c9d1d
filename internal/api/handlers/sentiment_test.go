package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerian-cx-insights/internal/api/response"
	"lerian-cx-insights/internal/config"
	"lerian-cx-insights/internal/sentiment"
	"lerian-cx-insights/internal/types"
)

func newTestSentimentHandler() *SentimentHandler {
	classifier := sentiment.NewLexiconClassifier(config.DefaultConfig().Sentiment, nil)
	return NewSentimentHandler(classifier, nil)
}

func post(t *testing.T, handle http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handle(rec, req)
	return rec
}

func TestSentimentHandler_Predict(t *testing.T) {
	handler := newTestSentimentHandler()

	rec := post(t, handler.HandlePredict, "/api/v1/sentiment/predict",
		`{"text": "excellent support, thanks for the quick fix"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data sentiment.Prediction `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, types.SentimentPositive, envelope.Data.Sentiment)
	assert.Greater(t, envelope.Data.Confidence, 0.5)

	sum := envelope.Data.Scores.Positive + envelope.Data.Scores.Negative + envelope.Data.Scores.Neutral
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSentimentHandler_PredictMissingText(t *testing.T) {
	handler := newTestSentimentHandler()

	rec := post(t, handler.HandlePredict, "/api/v1/sentiment/predict", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errResp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.ErrorCodeValidationFailed, errResp.Error.Code)
}

func TestSentimentHandler_PredictUnclassifiableText(t *testing.T) {
	handler := newTestSentimentHandler()

	// Whitespace-only text passes the presence check but fails preprocessing.
	rec := post(t, handler.HandlePredict, "/api/v1/sentiment/predict", `{"text": "   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSentimentHandler_PredictMalformedBody(t *testing.T) {
	handler := newTestSentimentHandler()

	rec := post(t, handler.HandlePredict, "/api/v1/sentiment/predict", `{"text": 42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSentimentHandler_BatchPredict(t *testing.T) {
	handler := newTestSentimentHandler()

	rec := post(t, handler.HandleBatchPredict, "/api/v1/sentiment/batch",
		`{"texts": ["great service", "everything is broken", "order received"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data BatchPredictResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	require.Equal(t, 3, envelope.Data.Count)
	require.Len(t, envelope.Data.Predictions, 3)
	assert.Equal(t, types.SentimentPositive, envelope.Data.Predictions[0].Sentiment)
	assert.Equal(t, types.SentimentNegative, envelope.Data.Predictions[1].Sentiment)
	assert.Equal(t, types.SentimentNeutral, envelope.Data.Predictions[2].Sentiment)
}

func TestSentimentHandler_BatchPredictEmpty(t *testing.T) {
	handler := newTestSentimentHandler()

	rec := post(t, handler.HandleBatchPredict, "/api/v1/sentiment/batch", `{"texts": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSentimentHandler_BatchPredictTooLarge(t *testing.T) {
	handler := newTestSentimentHandler()

	texts := make([]string, maxBatchTexts+1)
	for i := range texts {
		texts[i] = "ok"
	}
	body, err := json.Marshal(BatchPredictRequest{Texts: texts})
	require.NoError(t, err)

	rec := post(t, handler.HandleBatchPredict, "/api/v1/sentiment/batch", string(body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
