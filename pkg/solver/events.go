package solver

import "github.com/matzehuels/nqueens/pkg/board"

// Observer receives one event per attempted placement, in the exact order
// attempts occur during the search. Consumers typically use the stream to
// reconstruct the search tree; the engine itself depends on nothing the
// observer does.
//
// The parent assignment passed to OnAttempt is a snapshot the observer
// may retain; the engine never mutates it afterwards. nodeIndex is the
// engine's nodes-explored counter at the moment of the attempt.
type Observer interface {
	OnAttempt(parent board.Assignment, row, col, nodeIndex int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(parent board.Assignment, row, col, nodeIndex int)

// OnAttempt calls f.
func (f ObserverFunc) OnAttempt(parent board.Assignment, row, col, nodeIndex int) {
	f(parent, row, col, nodeIndex)
}
