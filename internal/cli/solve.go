package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nqueens/pkg/board"
	"github.com/matzehuels/nqueens/pkg/errors"
	"github.com/matzehuels/nqueens/pkg/pipeline"
	"github.com/matzehuels/nqueens/pkg/solver"
)

// solveCommand creates the solve command for finding one placement.
func (c *CLI) solveCommand() *cobra.Command {
	opts := pipeline.Options{
		MRV:      c.config.Solver.MRV,
		Degree:   c.config.Solver.Degree,
		LCV:      c.config.Solver.LCV,
		Strategy: c.config.Solver.Strategy,
		Seed:     c.config.Solver.Seed,
	}
	var (
		noCache bool
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <n>",
		Short: "Find a placement of n non-attacking queens",
		Long: `Find a placement of n non-attacking queens on an n×n board.

The default strategy is systematic backtracking with forward checking;
the MRV, degree, and LCV ordering heuristics are all enabled unless
turned off individually. Heuristics change the traversal order and the
node/backtrack counts, never whether a solution exists.

With --strategy bestfirst, partial boards are expanded in order of
f = g + h instead; column order is randomized from --seed, so different
seeds may return different (always valid) placements. Best-first runs
are never cached.

Boards of size 2 and 3 have no solution; the command reports that as a
normal outcome, not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidSize, "board size must be an integer, got %q", args[0])
			}
			opts.N = n
			return c.runSolve(cmd.Context(), opts, noCache, trace)
		},
	}

	cmd.Flags().BoolVar(&opts.MRV, "mrv", opts.MRV, "select the most constrained row first (minimum remaining values)")
	cmd.Flags().BoolVar(&opts.Degree, "degree", opts.Degree, "break row ties toward earlier, more constraining rows")
	cmd.Flags().BoolVar(&opts.LCV, "lcv", opts.LCV, "try the least constraining column first")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "search strategy: backtracking (default), bestfirst")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "seed for the bestfirst column shuffle")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every attempted placement at debug level")

	return cmd
}

// runSolve executes one solve and prints the outcome.
func (c *CLI) runSolve(ctx context.Context, opts pipeline.Options, noCache, trace bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	opts.Logger = c.Logger
	if trace {
		logger := c.Logger
		opts.Observer = solver.ObserverFunc(func(parent board.Assignment, row, col, nodeIndex int) {
			logger.Debug("attempt", "row", row, "col", col, "node", nodeIndex, "depth", len(parent))
		})
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving %d-queens...", opts.N))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if !result.Found {
		printWarning("No solution exists for n=%d", opts.N)
		printSolveStats(result.Stats.NodesExplored, result.Stats.Backtracks, result.Stats.Elapsed, result.CacheHit)
		return nil
	}

	printSuccess("Solution found for n=%d", opts.N)
	printSolution(result.Solution)
	printSolveStats(result.Stats.NodesExplored, result.Stats.Backtracks, result.Stats.Elapsed, result.CacheHit)
	return nil
}
