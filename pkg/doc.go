// Package pkg provides the core libraries for the nqueens solver.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [board] - Placement model, safety predicate, and validator
//  2. [solver] - Search strategies (backtracking, best-first) and events
//  3. [pipeline] - Orchestration (validation, caching, run identity)
//  4. [cache] - Result-cache backends (file, redis, null)
//  5. [errors] - Structured error codes shared by CLI and API
//  6. [observability] - Optional instrumentation hooks
//  7. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// The typical data flow through a solve:
//
//	CLI flags / HTTP request
//	         ↓
//	    [pipeline] package (validate options, check cache)
//	         ↓
//	    [solver] package (search with heuristics and forward checking)
//	         ↓
//	    [board] package (independent validation of the result)
//	         ↓
//	    terminal output / JSON response
//
// # Quick Start
//
// Run a solve through the pipeline:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/nqueens/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    N: 8, MRV: true, Degree: true, LCV: true,
//	})
//
// Or use the solver directly when caching and run identity are not needed:
//
//	import "github.com/matzehuels/nqueens/pkg/solver"
//
//	s, err := solver.New(8, solver.AllHeuristics())
//	result, err := s.Solve(context.Background())
package pkg
