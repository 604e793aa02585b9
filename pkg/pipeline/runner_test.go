package pipeline

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nqueens/pkg/board"
	"github.com/matzehuels/nqueens/pkg/cache"
	"github.com/matzehuels/nqueens/pkg/solver"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newFileRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	return NewRunner(c, testLogger())
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil)
	if r.Cache == nil {
		t.Error("NewRunner(nil, nil) should default to a null cache")
	}
	if r.Logger == nil {
		t.Error("NewRunner(nil, nil) should default to a logger")
	}
}

func TestExecute_Found(t *testing.T) {
	r := NewRunner(nil, testLogger())
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{N: 6})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Found {
		t.Fatal("Execute() Found = false, want true for n=6")
	}
	if result.RunID == "" {
		t.Error("Execute() RunID is empty")
	}
	if result.CacheHit {
		t.Error("Execute() CacheHit = true on a null cache, want false")
	}
	if err := board.Validate(6, board.FromColumns(result.Solution)); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestExecute_NotFoundIsNotAnError(t *testing.T) {
	r := NewRunner(nil, testLogger())
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{N: 3})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Found {
		t.Error("Execute() Found = true for n=3, want false")
	}
	if result.Solution != nil {
		t.Errorf("Execute() Solution = %v, want nil", result.Solution)
	}
}

func TestExecute_InvalidOptions(t *testing.T) {
	r := NewRunner(nil, testLogger())
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{N: -1}); err == nil {
		t.Error("Execute() error = nil for n=-1, want invalid size")
	}
	if _, err := r.Execute(context.Background(), Options{N: 8, Strategy: "dfs"}); err == nil {
		t.Error("Execute() error = nil for unknown strategy, want invalid strategy")
	}
}

func TestExecute_SecondRunHitsCache(t *testing.T) {
	r := newFileRunner(t)
	defer r.Close()

	opts := Options{N: 8, MRV: true, LCV: true}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheHit {
		t.Error("first run CacheHit = true, want false")
	}

	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheHit {
		t.Error("second run CacheHit = false, want true")
	}
	if !reflect.DeepEqual(second.Solution, first.Solution) {
		t.Errorf("cached solution = %v, want %v", second.Solution, first.Solution)
	}
	if second.Stats.NodesExplored != first.Stats.NodesExplored {
		t.Errorf("cached nodes = %d, want %d", second.Stats.NodesExplored, first.Stats.NodesExplored)
	}
	if second.RunID == first.RunID {
		t.Error("cached run reused the previous RunID, want a fresh one")
	}
}

func TestExecute_BestFirstNeverCached(t *testing.T) {
	r := newFileRunner(t)
	defer r.Close()

	opts := Options{N: 8, Strategy: StrategyBestFirst, Seed: 7}

	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if second.CacheHit {
		t.Error("best-first run CacheHit = true, want false")
	}
}

func TestExecute_ObserverBypassesCache(t *testing.T) {
	r := newFileRunner(t)
	defer r.Close()

	// Warm the cache without an observer.
	opts := Options{N: 6}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// The observed run must search for real so every attempt is emitted.
	attempts := 0
	opts.Observer = solver.ObserverFunc(func(board.Assignment, int, int, int) {
		attempts++
	})
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.CacheHit {
		t.Error("observed run CacheHit = true, want false")
	}
	if attempts == 0 {
		t.Error("observer received no attempts")
	}
}

func TestExecute_BestFirstSeedReproducible(t *testing.T) {
	r := NewRunner(nil, testLogger())
	defer r.Close()

	opts := Options{N: 8, Strategy: StrategyBestFirst, Seed: 123}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !reflect.DeepEqual(first.Solution, second.Solution) {
		t.Errorf("same seed gave different solutions: %v vs %v", first.Solution, second.Solution)
	}
}

func TestExecute_ContextCancellation(t *testing.T) {
	r := NewRunner(nil, testLogger())
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Execute(ctx, Options{N: 8}); err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}
