package handlers

import (
	"net/http"

	"lerian-cx-insights/internal/api/response"
	"lerian-cx-insights/internal/logging"
	"lerian-cx-insights/internal/sentiment"
)

// maxBatchTexts bounds a single batch prediction request.
const maxBatchTexts = 256

// SentimentHandler exposes the injected sentiment classifier over HTTP.
type SentimentHandler struct {
	classifier sentiment.Classifier
	logger     logging.Logger
}

// NewSentimentHandler creates a sentiment prediction handler.
func NewSentimentHandler(classifier sentiment.Classifier, logger logging.Logger) *SentimentHandler {
	if logger == nil {
		logger = logging.NewNoop()
	}
	return &SentimentHandler{
		classifier: classifier,
		logger:     logger.WithComponent("sentiment-handler"),
	}
}

// PredictRequest is the request body for single-text prediction.
type PredictRequest struct {
	Text string `json:"text"`
}

// BatchPredictRequest is the request body for batch prediction.
type BatchPredictRequest struct {
	Texts []string `json:"texts"`
}

// BatchPredictResponse carries the per-text predictions in request order.
type BatchPredictResponse struct {
	Predictions []*sentiment.Prediction `json:"predictions"`
	Count       int                     `json:"count"`
}

// HandlePredict processes POST /api/v1/sentiment/predict.
func (h *SentimentHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		response.WriteBadRequest(w, "Invalid request body", err.Error())
		return
	}
	if req.Text == "" {
		response.WriteValidationError(w, "text is required")
		return
	}

	prediction, err := h.classifier.Predict(r.Context(), req.Text)
	if err != nil {
		response.WriteValidationError(w, "text could not be classified", err.Error())
		return
	}

	response.WriteSuccess(w, prediction)
}

// HandleBatchPredict processes POST /api/v1/sentiment/batch.
func (h *SentimentHandler) HandleBatchPredict(w http.ResponseWriter, r *http.Request) {
	var req BatchPredictRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		response.WriteBadRequest(w, "Invalid request body", err.Error())
		return
	}
	if len(req.Texts) == 0 {
		response.WriteValidationError(w, "texts is required and must be non-empty")
		return
	}
	if len(req.Texts) > maxBatchTexts {
		response.WriteValidationError(w, "too many texts",
			"batch prediction is limited to 256 texts per request")
		return
	}

	predictions := h.classifier.BatchPredict(r.Context(), req.Texts)

	response.WriteSuccess(w, BatchPredictResponse{
		Predictions: predictions,
		Count:       len(predictions),
	})
}
