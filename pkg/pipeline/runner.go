package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/nqueens/pkg/board"
	"github.com/matzehuels/nqueens/pkg/cache"
	"github.com/matzehuels/nqueens/pkg/observability"
	"github.com/matzehuels/nqueens/pkg/solver"
)

// Runner executes solve runs with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// retain results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// cachedResult is the payload stored per deterministic run. Elapsed time
// is kept from the original run; a hit reports the cost of the search it
// saved, not the lookup.
type cachedResult struct {
	Found    bool         `json:"found"`
	Solution []int        `json:"solution,omitempty"`
	Stats    solver.Stats `json:"stats"`
}

// Execute runs one solve with validation, caching, and logging.
// It returns an error for invalid options or a cancelled context; an
// unsolvable board is reported in the result, not as an error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	runID := uuid.NewString()
	result := &Result{RunID: runID}

	observability.Solve().OnSolveStart(ctx, opts.N, opts.Strategy)

	if opts.cacheable() {
		if hit, ok := r.lookup(ctx, opts); ok {
			result.Found = hit.Found
			result.Solution = hit.Solution
			result.Stats = hit.Stats
			result.CacheHit = true
			logger.Info("solve served from cache",
				"run_id", runID,
				"n", opts.N,
				"found", hit.Found)
			observability.Solve().OnSolveComplete(ctx, opts.N, opts.Strategy,
				hit.Found, hit.Stats.NodesExplored, hit.Stats.Backtracks, 0, nil)
			return result, nil
		}
	}

	res, err := r.solve(ctx, opts)
	observability.Solve().OnSolveComplete(ctx, opts.N, opts.Strategy,
		err == nil && res != nil && res.Found, statsOf(res).NodesExplored, statsOf(res).Backtracks, statsOf(res).Elapsed, err)
	if err != nil {
		return nil, err
	}

	if res.Found {
		// Independent pairwise re-check. A failure here means the engine
		// and the safety predicate disagree, which is a defect, raised
		// loudly rather than returned as a user-facing error.
		if verr := board.Validate(opts.N, res.Solution); verr != nil {
			panic(fmt.Sprintf("solver produced an invalid solution for n=%d: %v", opts.N, verr))
		}
		result.Solution = board.Columns(opts.N, res.Solution)
	}
	result.Found = res.Found
	result.Stats = res.Stats

	logger.Info("solve complete",
		"run_id", runID,
		"n", opts.N,
		"strategy", opts.Strategy,
		"found", res.Found,
		"nodes", res.Stats.NodesExplored,
		"backtracks", res.Stats.Backtracks,
		"duration", res.Stats.Elapsed)

	if opts.cacheable() {
		r.store(ctx, opts, result)
	}
	return result, nil
}

// solve dispatches to the strategy selected in opts.
func (r *Runner) solve(ctx context.Context, opts Options) (*solver.Result, error) {
	switch opts.Strategy {
	case StrategyBestFirst:
		s, err := solver.NewBestFirst(opts.N, opts.Seed)
		if err != nil {
			return nil, err
		}
		return s.Solve(ctx)
	default:
		s, err := solver.New(opts.N, opts.Heuristics())
		if err != nil {
			return nil, err
		}
		if opts.Observer != nil {
			s.SetObserver(opts.Observer)
		}
		return s.Solve(ctx)
	}
}

// lookup fetches a cached result. Cache failures degrade to a miss: the
// search itself must never fail because a backend is unreachable.
func (r *Runner) lookup(ctx context.Context, opts Options) (*cachedResult, bool) {
	key := opts.cacheKey()
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache lookup failed", "err", err)
		return nil, false
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, "solve")
		return nil, false
	}
	var entry cachedResult
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = r.Cache.Delete(ctx, key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "solve")
	return &entry, true
}

// store writes a result to the cache; failures are logged, never fatal.
// Deterministic results never go stale, so entries are written without
// expiration.
func (r *Runner) store(ctx context.Context, opts Options, result *Result) {
	entry := cachedResult{
		Found:    result.Found,
		Solution: result.Solution,
		Stats:    result.Stats,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, opts.cacheKey(), data, time.Duration(0)); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "solve", len(data))
}

// Close releases the runner's cache backend.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// statsOf tolerates a nil result when reporting hook fields after errors.
func statsOf(res *solver.Result) solver.Stats {
	if res == nil {
		return solver.Stats{}
	}
	return res.Stats
}
