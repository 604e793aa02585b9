// Package board models N-Queens placements as a constraint problem.
//
// A board of size N has one queen per row; the only decision is which
// column each row's queen occupies. The package provides the safety
// predicate shared by every solving strategy, candidate-column
// computation for a row, the lookahead conflict count used by
// value-ordering heuristics, and an independent validator for complete
// placements.
//
// # Representation
//
// Partial placements are an [Assignment], a row→column map holding at
// most one entry per row. Functions here never mutate their input
// assignment; callers that need to extend a placement work on a
// [Assignment.Clone].
//
// # Safety Rule
//
// Two queens attack each other when they share a column or a diagonal.
// Rows cannot collide by construction (one entry per row), and the
// diagonal test is |r1-r2| == |c1-c2|.
package board

import "sort"

// Assignment maps a row index to the column occupied by that row's queen.
// Keys are unique by construction: a row holds at most one queen.
type Assignment map[int]int

// Clone returns an independent copy of the assignment.
// Sibling search branches each extend their own clone, so a failed
// branch never leaves a stale entry visible to the next one.
func (a Assignment) Clone() Assignment {
	next := make(Assignment, len(a)+1)
	for row, col := range a {
		next[row] = col
	}
	return next
}

// Rows returns the assigned row indices in ascending order.
func (a Assignment) Rows() []int {
	rows := make([]int, 0, len(a))
	for row := range a {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// Columns flattens a complete assignment into a slice where index i holds
// the column of row i's queen. It returns nil if any of the n rows is
// unassigned.
func Columns(n int, a Assignment) []int {
	if len(a) != n {
		return nil
	}
	cols := make([]int, n)
	for row := 0; row < n; row++ {
		col, ok := a[row]
		if !ok {
			return nil
		}
		cols[row] = col
	}
	return cols
}

// FromColumns builds an assignment from a column slice: row i gets cols[i].
// The slice may be shorter than the board size (a partial placement of the
// first len(cols) rows).
func FromColumns(cols []int) Assignment {
	a := make(Assignment, len(cols))
	for row, col := range cols {
		a[row] = col
	}
	return a
}

// IsSafe reports whether a queen at (row, col) attacks no queen already
// placed in a. It is a pure function: O(|a|) comparisons, no side effects.
func IsSafe(a Assignment, row, col int) bool {
	for assignedRow, assignedCol := range a {
		if assignedCol == col {
			return false
		}
		if abs(assignedRow-row) == abs(assignedCol-col) {
			return false
		}
	}
	return true
}

// AvailableColumns returns every column 0..n-1 where a queen could be
// placed on row without attacking a queen in a, in ascending column
// order. Heuristic reordering (if any) happens downstream.
func AvailableColumns(n int, a Assignment, row int) []int {
	cols := make([]int, 0, n)
	for col := 0; col < n; col++ {
		if IsSafe(a, row, col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// CountConflicts counts how many (futureRow, futureCol) pairs across all
// unassigned rows are unsafe once a queen is placed at (row, col). The
// placement is simulated on a copy; the input assignment is never
// mutated.
//
// This is a lookahead cost for value ordering, not a hard constraint: it
// counts every blocked pair under the simulated placement, including
// pairs that were already blocked beforehand. Cost is O(N³) per call,
// which dominates runtime when the least-constraining-value heuristic is
// enabled on large boards.
func CountConflicts(n int, a Assignment, row, col int) int {
	sim := a.Clone()
	sim[row] = col

	conflicts := 0
	for futureRow := 0; futureRow < n; futureRow++ {
		if _, assigned := sim[futureRow]; assigned {
			continue
		}
		for futureCol := 0; futureCol < n; futureCol++ {
			if !IsSafe(sim, futureRow, futureCol) {
				conflicts++
			}
		}
	}
	return conflicts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
