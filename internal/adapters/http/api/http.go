// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	service "github.com/okian/lovecalc/internal/app"
	"github.com/okian/lovecalc/internal/domain/model"
	"github.com/okian/lovecalc/pkg/logger"
	"github.com/okian/lovecalc/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Submit validates and stores a calculation.
	Submit(ctx context.Context, req service.Request) (model.Submission, error)

	// Stats reports stored submissions and storage connectivity.
	Stats(ctx context.Context) service.Stats
}

// Server wires HTTP routes for the business API.
type Server struct {
	calculateHandler *CalculateHandler
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	logger           logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.calculateHandler = NewCalculateHandler(deps, s.logger)
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(deps)
	return s
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	r.Use(RequestIDMiddleware(s.logger))

	r.HandleFunc("/api/calculate", MetricsMiddleware(s.calculateHandler.HandleCalculate, "calculate")).
		Methods(http.MethodPost)
	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).
		Methods(http.MethodGet)
	r.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).
		Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})).
		Methods(http.MethodGet)
}

// messageResponse is the body of every non-2xx answer from /api/calculate.
type messageResponse struct {
	Message     string `json:"message"`
	ErrorDetail string `json:"errorDetail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := messageResponse{Message: msg}
	if err != nil {
		resp.ErrorDetail = err.Error()
	}
	writeJSON(w, status, resp)
}
