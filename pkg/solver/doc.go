// Package solver searches for non-attacking queen placements.
//
// Two independent strategies are provided:
//
//   - [Solver]: systematic backtracking over partial assignments with
//     forward checking and optional MRV/degree/LCV ordering heuristics.
//     Deterministic; always finds a solution when one exists.
//   - [BestFirst]: a best-first exploration ordered by f = g + h, where g
//     is the number of queens placed and h is a one-step lookahead count
//     of blocked future squares. Column trial order is randomized from an
//     explicit seed, so different seeds may return different (always
//     valid) solutions.
//
// Both strategies share the safety predicate from
// github.com/matzehuels/nqueens/pkg/board and report the same [Stats].
//
// # Search Order vs. Correctness
//
// Heuristics change traversal order only. Whether a solution exists for a
// given board size is invariant under every heuristic combination; the
// node and backtrack counts, and which of several solutions is returned
// first, are not.
//
// # Failure Semantics
//
// A dead branch is a normal negative result propagated by return value.
// Solvers return an error only for invalid construction parameters or a
// cancelled context, never for an unsolvable board.
package solver
