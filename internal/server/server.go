// Package server exposes the two-phase review API over HTTP+JSON.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/Hustada/dynastylab/internal/export"
	"github.com/Hustada/dynastylab/internal/metrics"
	"github.com/Hustada/dynastylab/internal/pipeline"
)

// Server drives the orchestrator on behalf of the review/batch UI. Analyzed
// results wait in memory under a review token until the UI commits or
// discards them; nothing touches a store before commit.
type Server struct {
	orch   *pipeline.Orchestrator
	stores pipeline.Stores
	export *export.Service
	logger *slog.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]*pipeline.AnalysisResult
}

func New(orch *pipeline.Orchestrator, stores pipeline.Stores, exporter *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		orch:    orch,
		stores:  stores,
		export:  exporter,
		logger:  logger,
		pending: make(map[uuid.UUID]*pipeline.AnalysisResult),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /v1/commit", s.handleCommit)
	mux.HandleFunc("DELETE /v1/review/{token}", s.handleDiscard)
	mux.HandleFunc("GET /v1/stores/{kind}", s.handleStores)
	mux.HandleFunc("GET /v1/export", s.handleExport)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
