package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nqueens/pkg/board"
	"github.com/matzehuels/nqueens/pkg/pipeline"
)

func newTestServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(pipeline.NewRunner(nil, logger), logger)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want %q", body["status"], "ok")
	}
}

func TestSolve_Found(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve",
		strings.NewReader(`{"n": 6, "mrv": true, "lcv": true}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/v1/solve status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var body solveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if !body.Found {
		t.Fatal("found = false, want true for n=6")
	}
	if body.RunID == "" {
		t.Error("run_id is empty")
	}
	if body.NodesExplored <= 0 {
		t.Errorf("nodes_explored = %d, want > 0", body.NodesExplored)
	}
	if err := board.Validate(6, board.FromColumns(body.Solution)); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSolve_UnsolvableIsOK(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader(`{"n": 3}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (unsolvable is not an error)", rec.Code, http.StatusOK)
	}

	var body solveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if body.Found {
		t.Error("found = true for n=3, want false")
	}
	if body.Solution != nil {
		t.Errorf("solution = %v, want omitted", body.Solution)
	}
}

func TestSolve_InvalidSize(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader(`{"n": 0}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if body.Code != "INVALID_SIZE" {
		t.Errorf("code = %q, want %q", body.Code, "INVALID_SIZE")
	}
}

func TestSolve_InvalidStrategy(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve",
		strings.NewReader(`{"n": 8, "strategy": "dfs"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if body.Code != "INVALID_STRATEGY" {
		t.Errorf("code = %q, want %q", body.Code, "INVALID_STRATEGY")
	}
}

func TestSolve_MalformedJSON(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSolve_BestFirstStrategy(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve",
		strings.NewReader(`{"n": 8, "strategy": "bestfirst", "seed": 7}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	var body solveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response unmarshal error: %v", err)
	}
	if !body.Found {
		t.Fatal("found = false, want true for n=8")
	}
	if err := board.Validate(8, board.FromColumns(body.Solution)); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
