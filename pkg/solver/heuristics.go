package solver

import (
	"sort"

	"github.com/matzehuels/nqueens/pkg/board"
)

// Heuristics toggles the variable- and value-ordering strategies used by
// the backtracking engine. The zero value disables all three, yielding
// plain ascending row and column order.
type Heuristics struct {
	// MRV selects the unassigned row with the fewest remaining safe
	// columns ("fail first").
	MRV bool

	// Degree selects the row that constrains the most other rows. In the
	// row-sequential queens encoding this degenerates to the lowest
	// unassigned row index, and that simplified rule is kept on purpose:
	// a general constraint-graph degree count would change traversal
	// order and invalidate comparative statistics.
	Degree bool

	// LCV orders a row's candidate columns by how few future squares each
	// one blocks ("least constraining value first").
	LCV bool
}

// AllHeuristics returns a Heuristics value with MRV, Degree, and LCV all
// enabled.
func AllHeuristics() Heuristics {
	return Heuristics{MRV: true, Degree: true, LCV: true}
}

// SelectRow picks the next row to branch on from the unassigned rows.
// unassigned must be non-empty and sorted ascending; the engine maintains
// that invariant. Ties under MRV go to the lowest row index, so repeated
// runs traverse the search tree identically.
func (h Heuristics) SelectRow(n int, a board.Assignment, unassigned []int) int {
	switch {
	case !h.MRV && !h.Degree:
		// Default ascending order.
		return unassigned[0]
	case h.MRV && !h.Degree:
		return mrvRow(n, a, unassigned)
	case !h.MRV && h.Degree:
		// Earlier rows structurally constrain more later rows.
		return unassigned[0]
	default:
		// MRV with degree as the tie-break: among all rows achieving the
		// minimum remaining-value count, take the lowest index.
		return mrvRow(n, a, unassigned)
	}
}

// mrvRow returns the unassigned row with the fewest available columns.
// Ascending iteration makes "first encountered minimum" the lowest index,
// which is also what the degree tie-break selects, so both MRV modes
// share this implementation.
func mrvRow(n int, a board.Assignment, unassigned []int) int {
	bestRow := unassigned[0]
	minValues := n + 1
	for _, row := range unassigned {
		if available := len(board.AvailableColumns(n, a, row)); available < minValues {
			minValues = available
			bestRow = row
		}
	}
	return bestRow
}

// OrderColumns returns the candidate columns for row in trial order.
// With LCV disabled the input order (ascending) is kept. With LCV
// enabled, columns are stable-sorted by their lookahead conflict count,
// fewest conflicts first, so the least constraining value is tried first.
// The input slice is not modified.
func (h Heuristics) OrderColumns(n int, a board.Assignment, row int, cols []int) []int {
	if !h.LCV {
		return cols
	}

	conflicts := make(map[int]int, len(cols))
	for _, col := range cols {
		conflicts[col] = board.CountConflicts(n, a, row, col)
	}

	ordered := make([]int, len(cols))
	copy(ordered, cols)
	sort.SliceStable(ordered, func(i, j int) bool {
		return conflicts[ordered[i]] < conflicts[ordered[j]]
	})
	return ordered
}
