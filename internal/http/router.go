package http

import (
	"net/http"

	"dealer-analytics/internal/aggregators"
	"dealer-analytics/internal/ingestors"
	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/auth"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// RouterDeps are the services the HTTP surface delegates to.
type RouterDeps struct {
	IngestionService ingestors.IngestionService
	SummaryService   aggregators.SummaryService
	Authenticator    auth.Authenticator
	DefaultRange     models.RangeWindow
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps RouterDeps, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventsHandler := NewIngestEventsHandler(deps.IngestionService)
	summaryHandler := NewSummaryHandler(deps.SummaryService, deps.DefaultRange)

	// Routes
	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler()))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Post("/events", errorHandlingAdapter(ingestEventsHandler))
	router.With(mwAuthenticate(deps.Authenticator)).
		Get("/analytics/summary", errorHandlingAdapter(summaryHandler))

	return router
}
