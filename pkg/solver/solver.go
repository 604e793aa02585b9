package solver

import (
	"context"
	"time"

	"github.com/matzehuels/nqueens/pkg/board"
	"github.com/matzehuels/nqueens/pkg/errors"
)

// Stats holds the counters accumulated during one solve invocation. Both
// counters only ever grow while a search runs.
type Stats struct {
	// NodesExplored is incremented once per engine invocation, the root
	// included.
	NodesExplored int `json:"nodes_explored"`

	// Backtracks is incremented once per column attempt that fails
	// immediately or whose subtree fails, and once whenever a row has no
	// candidate columns at all.
	Backtracks int `json:"backtracks"`

	// Elapsed is the wall-clock duration of the solve call.
	Elapsed time.Duration `json:"elapsed"`
}

// Result is the outcome of a solve call: either a complete assignment
// (Found true) or an explicit no-solution indicator, plus the search
// statistics.
type Result struct {
	Found    bool
	Solution board.Assignment
	Stats    Stats
}

// Solver is the systematic backtracking engine with forward checking.
//
// Each instance owns its statistics counters; they are reset at the start
// of every Solve call and mutated only by that call, so two instances
// never share state. A Solver is not safe for concurrent use.
type Solver struct {
	n          int
	heuristics Heuristics
	observer   Observer
	stats      Stats
}

// New creates a backtracking solver for an n×n board. A non-positive n is
// a precondition violation rejected here, before any search runs.
func New(n int, h Heuristics) (*Solver, error) {
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "board size must be positive, got %d", n)
	}
	return &Solver{n: n, heuristics: h}, nil
}

// SetObserver registers an observer for per-attempt placement events.
// A nil observer disables event emission.
func (s *Solver) SetObserver(o Observer) {
	s.observer = o
}

// N returns the board size.
func (s *Solver) N() int { return s.n }

// Stats returns the counters of the most recent Solve call.
func (s *Solver) Stats() Stats { return s.stats }

// Solve runs the search and returns the first solution found in the
// heuristic-driven order, or an explicit not-found result when the board
// admits no placement. The only error condition is context cancellation,
// checked at every recursion entry; an unsolvable board is a normal
// negative result, not an error.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	s.stats = Stats{}
	start := time.Now()

	unassigned := make([]int, s.n)
	for row := range unassigned {
		unassigned[row] = row
	}

	solution, err := s.backtrack(ctx, make(board.Assignment, s.n), unassigned)
	s.stats.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	return &Result{
		Found:    solution != nil,
		Solution: solution,
		Stats:    s.stats,
	}, nil
}

// backtrack assigns one row per recursion level. It returns the completed
// assignment on success and nil for a dead branch; the error is non-nil
// only when ctx is cancelled. unassigned stays sorted ascending at every
// level, which keeps heuristic tie-breaks deterministic.
func (s *Solver) backtrack(ctx context.Context, a board.Assignment, unassigned []int) (board.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.stats.NodesExplored++

	// All queens placed.
	if len(a) == s.n {
		return a, nil
	}

	row := s.heuristics.SelectRow(s.n, a, unassigned)

	cols := board.AvailableColumns(s.n, a, row)
	if len(cols) == 0 {
		s.stats.Backtracks++
		return nil, nil
	}
	cols = s.heuristics.OrderColumns(s.n, a, row, cols)

	rest := without(unassigned, row)
	for _, col := range cols {
		next := a.Clone()
		next[row] = col

		if s.observer != nil {
			s.observer.OnAttempt(a.Clone(), row, col, s.stats.NodesExplored)
		}

		// Forward checking: a placement that strips some future row of
		// all candidates kills this branch before recursing into it.
		if s.forwardCheck(next, rest) {
			solution, err := s.backtrack(ctx, next, rest)
			if err != nil {
				return nil, err
			}
			if solution != nil {
				// First-solution short-circuit: no further columns or
				// rows are tried.
				return solution, nil
			}
		}
		s.stats.Backtracks++
	}

	return nil, nil
}

// forwardCheck reports whether every row in unassigned still has at least
// one safe column under a.
func (s *Solver) forwardCheck(a board.Assignment, unassigned []int) bool {
	for _, row := range unassigned {
		if len(board.AvailableColumns(s.n, a, row)) == 0 {
			return false
		}
	}
	return true
}

// without returns rows with the given row removed, preserving order. The
// input slice is not modified; each recursion level owns its copy so a
// backtrack implicitly restores the parent's set.
func without(rows []int, row int) []int {
	rest := make([]int, 0, len(rows)-1)
	for _, r := range rows {
		if r != row {
			rest = append(rest, r)
		}
	}
	return rest
}
