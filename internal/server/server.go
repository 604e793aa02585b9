// Package server exposes solve runs over an HTTP JSON API.
//
// The API is a thin boundary over pkg/pipeline: requests mirror
// pipeline.Options, responses carry the run ID, the placement, and the
// search statistics. Invalid input maps to 400 with the structured error
// code; an unsolvable board is a 200 with found=false, because it is a
// normal search outcome and not a failure.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	qerrors "github.com/matzehuels/nqueens/pkg/errors"
	"github.com/matzehuels/nqueens/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server serves solve requests over HTTP.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around the given runner.
// If logger is nil, log.Default() is used.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/v1/solve", s.handleSolve)

	s.router = r
	return s
}

// Handler returns the server's HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// =============================================================================
// Handlers
// =============================================================================

// solveResponse is the JSON body returned for a completed solve.
type solveResponse struct {
	RunID         string `json:"run_id"`
	Found         bool   `json:"found"`
	Solution      []int  `json:"solution,omitempty"`
	NodesExplored int    `json:"nodes_explored"`
	Backtracks    int    `json:"backtracks"`
	ElapsedMs     int64  `json:"elapsed_ms"`
	CacheHit      bool   `json:"cache_hit"`
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return // client went away
		}
		writeJSON(w, statusFor(err), errorResponse{
			Error: qerrors.UserMessage(err),
			Code:  string(qerrors.GetCode(err)),
		})
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{
		RunID:         result.RunID,
		Found:         result.Found,
		Solution:      result.Solution,
		NodesExplored: result.Stats.NodesExplored,
		Backtracks:    result.Stats.Backtracks,
		ElapsedMs:     result.Stats.Elapsed.Milliseconds(),
		CacheHit:      result.CacheHit,
	})
}

// statusFor maps structured error codes to HTTP status codes. Validation
// failures are client errors; everything else is internal.
func statusFor(err error) int {
	switch qerrors.GetCode(err) {
	case qerrors.ErrCodeInvalidSize, qerrors.ErrCodeInvalidStrategy, qerrors.ErrCodeInvalidHeuristic:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// =============================================================================
// Middleware
// =============================================================================

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
