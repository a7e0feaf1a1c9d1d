// Package api provides the HTTP API layer for the CX Insights service.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"lerian-cx-insights/internal/api/handlers"
	"lerian-cx-insights/internal/api/middleware"
	"lerian-cx-insights/internal/config"
	"lerian-cx-insights/internal/logging"
	"lerian-cx-insights/internal/patterns"
	"lerian-cx-insights/internal/sentiment"
)

// Router represents the main API router.
type Router struct {
	config *config.Config
	mux    *chi.Mux
	logger logging.Logger
}

// NewRouter creates a new API router with middleware and routes. The
// classifier is the dependency-injected sentiment collaborator shared by the
// analysis and prediction endpoints.
func NewRouter(cfg *config.Config, classifier sentiment.Classifier, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.NewNoop()
	}

	r := &Router{
		config: cfg,
		mux:    chi.NewRouter(),
		logger: logger,
	}

	r.setupMiddleware()
	r.setupRoutes(classifier)

	return r
}

// Handler returns the HTTP handler.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// setupMiddleware configures the middleware stack.
func (r *Router) setupMiddleware() {
	// Recovery middleware (should be first)
	r.mux.Use(chimiddleware.Recoverer)

	// Request timeout
	r.mux.Use(chimiddleware.Timeout(time.Duration(r.config.Server.WriteTimeout) * time.Second))

	// Request ID + structured request logging
	loggingMiddleware := middleware.NewLoggingMiddleware(r.logger)
	r.mux.Use(loggingMiddleware.Handler())

	// Request size limit (1MB); analysis batches are bounded, not streamed
	r.mux.Use(chimiddleware.RequestSize(1 * 1024 * 1024))

	// Heartbeat for load balancer health checks
	r.mux.Use(chimiddleware.Heartbeat("/ping"))
}

// setupRoutes wires the handlers.
func (r *Router) setupRoutes(classifier sentiment.Classifier) {
	engine := patterns.NewEngineWithThresholds(
		r.config.Detection.MinBatchSize,
		r.config.Detection.ConfidenceFloor,
		r.logger,
	)

	healthHandler := handlers.NewHealthHandler(r.config)
	analyzeHandler := handlers.NewAnalyzeHandler(engine, classifier, r.logger)
	sentimentHandler := handlers.NewSentimentHandler(classifier, r.logger)

	r.mux.Get("/health", healthHandler.Handle)

	r.mux.Route("/api/v1", func(v1 chi.Router) {
		v1.Post("/patterns/analyze", analyzeHandler.Handle)
		v1.Post("/sentiment/predict", sentimentHandler.HandlePredict)
		v1.Post("/sentiment/batch", sentimentHandler.HandleBatchPredict)
	})
}
