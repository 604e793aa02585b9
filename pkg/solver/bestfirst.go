package solver

import (
	"container/heap"
	"context"
	"math/rand"
	"time"

	"github.com/matzehuels/nqueens/pkg/board"
	"github.com/matzehuels/nqueens/pkg/errors"
)

// BestFirst is the alternative search strategy: partial boards are
// expanded in order of f = g + h, where g is the number of queens placed
// (rows are filled top to bottom) and h counts the squares in unexplored
// rows that the partial board renders unsafe.
//
// h is a one-step lookahead estimate, not an admissible heuristic in the
// A* sense, so the returned solution carries no optimality guarantee: it
// is simply the first complete board popped from the queue.
//
// Column trial order at each expansion is randomized from the seed given
// at construction. The same seed reproduces the same expansion sequence
// and the same solution; different seeds may return different valid
// solutions. A BestFirst is not safe for concurrent use.
type BestFirst struct {
	n     int
	seed  int64
	stats Stats
}

// NewBestFirst creates a best-first solver for an n×n board. The seed
// fixes the randomized column order; callers wanting run-to-run variety
// should pass something like time.Now().UnixNano().
func NewBestFirst(n int, seed int64) (*BestFirst, error) {
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "board size must be positive, got %d", n)
	}
	return &BestFirst{n: n, seed: seed}, nil
}

// N returns the board size.
func (b *BestFirst) N() int { return b.n }

// Stats returns the counters of the most recent Solve call. For this
// strategy NodesExplored counts queue pops (expansions) and Backtracks
// counts expansions that produced no children.
func (b *BestFirst) Stats() Stats { return b.stats }

// Solve expands partial boards until a complete one is popped or the
// queue empties. An empty queue means no solution exists, reported by
// value; the only error condition is context cancellation.
func (b *BestFirst) Solve(ctx context.Context) (*Result, error) {
	b.stats = Stats{}
	start := time.Now()
	rng := rand.New(rand.NewSource(b.seed))

	frontier := &boardHeap{}
	heap.Init(frontier)
	rootCost := b.lookaheadCost(nil)
	heap.Push(frontier, &partialBoard{f: rootCost, h: rootCost})

	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node := heap.Pop(frontier).(*partialBoard)
		b.stats.NodesExplored++

		if node.g == b.n {
			b.stats.Elapsed = time.Since(start)
			return &Result{
				Found:    true,
				Solution: board.FromColumns(node.cols),
				Stats:    b.stats,
			}, nil
		}

		placed := board.FromColumns(node.cols)
		row := node.g
		expanded := false
		for _, col := range rng.Perm(b.n) {
			if !board.IsSafe(placed, row, col) {
				continue
			}
			child := make([]int, row+1)
			copy(child, node.cols)
			child[row] = col

			g := row + 1
			h := b.lookaheadCost(child)
			heap.Push(frontier, &partialBoard{f: g + h, g: g, h: h, cols: child})
			expanded = true
		}
		if !expanded {
			b.stats.Backtracks++
		}
	}

	b.stats.Elapsed = time.Since(start)
	return &Result{Found: false, Stats: b.stats}, nil
}

// lookaheadCost counts the (row, column) pairs in rows not yet placed
// that are unsafe under the partial board cols.
func (b *BestFirst) lookaheadCost(cols []int) int {
	placed := board.FromColumns(cols)
	blocked := 0
	for row := len(cols); row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if !board.IsSafe(placed, row, col) {
				blocked++
			}
		}
	}
	return blocked
}

// partialBoard is a frontier entry: the first g rows hold queens at cols.
type partialBoard struct {
	f    int   // g + h, the expansion priority
	g    int   // queens placed (depth)
	h    int   // lookahead-blocked count
	cols []int // cols[row] for row < g
}

// boardHeap is a binary min-heap over partial boards ordered by the
// (f, g, board) tuple, with the board encoding compared lexicographically.
type boardHeap []*partialBoard

func (q boardHeap) Len() int { return len(q) }

func (q boardHeap) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return lessCols(a.cols, b.cols)
}

func (q boardHeap) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *boardHeap) Push(x any) { *q = append(*q, x.(*partialBoard)) }

func (q *boardHeap) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// lessCols compares two board encodings lexicographically.
func lessCols(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
