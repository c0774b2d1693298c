// Package server implements the gridkit HTTP API.
//
// The API stores named layout documents and exposes the engine operations
// over them. All request and response bodies are the JSON document format
// of [github.com/matzehuels/gridkit/pkg/schema]. Errors are returned as
//
//	{"error": "message", "code": "LAYOUT_NOT_FOUND"}
//
// with the structured error code mapped to an HTTP status.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/observability"
	"github.com/matzehuels/gridkit/pkg/pipeline"
	"github.com/matzehuels/gridkit/pkg/store"
)

// Server routes layout API requests to the store and the pipeline runner.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates the API handler. A nil logger falls back to the default.
func New(st store.Store, runner *pipeline.Runner, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{store: st, runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/layouts", s.handleList)
		r.Route("/layouts/{name}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)
			r.Post("/ops", s.handleOps)
			r.Get("/areas", s.handleAreas)
		})
		r.Post("/compact", s.handleCompact)
		r.Post("/render", s.handleRender)
	})

	return r
}

// =============================================================================
// Responses
// =============================================================================

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON serializes v with an indent for terminal-friendly output.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError maps a structured error code to an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	code := gkerrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case gkerrors.ErrCodeLayoutNotFound, gkerrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case gkerrors.ErrCodeInvalidFormat, gkerrors.ErrCodeInvalidOperation,
		gkerrors.ErrCodeInvalidCompaction, gkerrors.ErrCodeInvalidName,
		gkerrors.ErrCodeMissingID, gkerrors.ErrCodeDuplicateID,
		gkerrors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case gkerrors.ErrCodeStorage:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Code: string(code)})
}

// =============================================================================
// Middleware
// =============================================================================

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs every request and feeds the server hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		observability.Server().OnRequest(req.Context(), req.Method, req.URL.Path)
		next.ServeHTTP(rec, req)
		elapsed := time.Since(start)
		observability.Server().OnResponse(req.Context(), req.Method, req.URL.Path, rec.status, elapsed)

		s.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", elapsed.Round(time.Microsecond))
	})
}
