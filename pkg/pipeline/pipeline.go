// Package pipeline orchestrates solve runs for the CLI and API.
//
// This package wraps the solver strategies with the cross-cutting
// concerns both entry points need (option validation and defaults,
// result caching, run identifiers, structured logging, and the
// post-solve validation assertion) so that behavior stays identical
// whether a solve is triggered from the command line or over HTTP.
//
// # Usage
//
// Create a Runner and execute a solve:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{N: 8, MRV: true, Degree: true, LCV: true}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	if !result.Found {
//	    // no placement exists for this board size
//	}
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/nqueens/pkg/cache"
	"github.com/matzehuels/nqueens/pkg/errors"
	"github.com/matzehuels/nqueens/pkg/solver"
)

// =============================================================================
// Defaults - Single Source of Truth for CLI and API
// =============================================================================

// Strategy names accepted by Options.Strategy.
const (
	// StrategyBacktracking is the systematic CSP search with forward
	// checking. Deterministic; results are cacheable.
	StrategyBacktracking = "backtracking"

	// StrategyBestFirst is the f = g + h best-first variant with
	// seeded-random column order. Never cached.
	StrategyBestFirst = "bestfirst"
)

// DefaultSeed is the default seed for the best-first column shuffle.
// Fixed so repeated runs are reproducible unless the caller opts out.
const DefaultSeed = int64(42)

// ValidStrategies is the set of supported solve strategies.
var ValidStrategies = map[string]bool{
	StrategyBacktracking: true,
	StrategyBestFirst:    true,
}

// ValidateStrategy checks that a strategy name is valid.
func ValidateStrategy(strategy string) error {
	if !ValidStrategies[strategy] {
		return errors.New(errors.ErrCodeInvalidStrategy,
			"invalid strategy: %q (must be one of: backtracking, bestfirst)", strategy)
	}
	return nil
}

// =============================================================================
// Options - Solve Configuration
// =============================================================================

// Options contains all configuration for a solve run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// N is the board size. Required; must be positive.
	N int `json:"n"`

	// Heuristic toggles for the backtracking strategy.
	MRV    bool `json:"mrv"`
	Degree bool `json:"degree"`
	LCV    bool `json:"lcv"`

	// Strategy selects the solver; defaults to backtracking.
	Strategy string `json:"strategy,omitempty"`

	// Seed fixes the best-first column shuffle. Ignored by backtracking.
	Seed int64 `json:"seed,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger     `json:"-"`
	Observer solver.Observer `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Invalid configuration is rejected here, before any search starts. The
// method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.N <= 0 {
		return errors.New(errors.ErrCodeInvalidSize, "board size must be positive, got %d", o.N)
	}
	if o.Strategy == "" {
		o.Strategy = StrategyBacktracking
	}
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Heuristics returns the solver heuristic toggles for these options.
func (o Options) Heuristics() solver.Heuristics {
	return solver.Heuristics{MRV: o.MRV, Degree: o.Degree, LCV: o.LCV}
}

// cacheKey identifies a deterministic solve run. Seed is excluded: it
// only affects the (uncached) best-first strategy.
func (o Options) cacheKey() string {
	return cache.Key("solve", o.N, o.MRV, o.Degree, o.LCV)
}

// cacheable reports whether this run's result may be served from or
// written to the cache. Randomized strategies are excluded, and so are
// runs with an observer: a cached result would silently skip the attempt
// events the observer was registered to receive.
func (o Options) cacheable() bool {
	return o.Strategy == StrategyBacktracking && o.Observer == nil
}

// =============================================================================
// Result
// =============================================================================

// Result is the outcome of one pipeline run.
type Result struct {
	// RunID uniquely identifies this run across restarts and instances.
	RunID string `json:"run_id"`

	// Found reports whether a placement exists; false is a normal
	// outcome for N of 2 or 3, not an error.
	Found bool `json:"found"`

	// Solution holds the column of each row's queen, index = row.
	// Nil when Found is false.
	Solution []int `json:"solution,omitempty"`

	// Stats are the search counters and elapsed time.
	Stats solver.Stats `json:"stats"`

	// CacheHit reports whether the result was served from the cache.
	CacheHit bool `json:"cache_hit"`
}
