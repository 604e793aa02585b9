package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nqueens/pkg/errors"
	"github.com/matzehuels/nqueens/pkg/pipeline"
)

// compareConfigs is the fixed set of heuristic combinations measured by
// the compare command, from no heuristics to all three.
var compareConfigs = []struct {
	name             string
	mrv, degree, lcv bool
}{
	{"none", false, false, false},
	{"mrv", true, false, false},
	{"degree", false, true, false},
	{"lcv", false, false, true},
	{"mrv+degree", true, true, false},
	{"mrv+lcv", true, false, true},
	{"mrv+degree+lcv", true, true, true},
}

// compareCommand creates the compare command for benchmarking heuristics.
func (c *CLI) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <n>",
		Short: "Compare heuristic configurations for one board size",
		Long: `Compare heuristic configurations for one board size.

Runs the backtracking solver once per combination of the MRV, degree,
and LCV heuristics and prints the node, backtrack, and timing statistics
side by side. Results are always computed fresh: the cache is bypassed
so the numbers reflect actual search effort.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidSize, "board size must be an integer, got %q", args[0])
			}
			return c.runCompare(cmd.Context(), n)
		},
	}
	return cmd
}

// runCompare measures every heuristic configuration and prints the table.
func (c *CLI) runCompare(ctx context.Context, n int) error {
	// Comparative statistics must come from real searches, never the cache.
	runner := pipeline.NewRunner(nil, c.Logger)
	prog := newProgress(c.Logger)

	rows := make([]compareRow, 0, len(compareConfigs))
	for _, cfg := range compareConfigs {
		result, err := runner.Execute(ctx, pipeline.Options{
			N:      n,
			MRV:    cfg.mrv,
			Degree: cfg.degree,
			LCV:    cfg.lcv,
			Logger: c.Logger,
		})
		if err != nil {
			return err
		}
		rows = append(rows, compareRow{
			name:       cfg.name,
			nodes:      result.Stats.NodesExplored,
			backtracks: result.Stats.Backtracks,
			elapsed:    result.Stats.Elapsed,
			found:      result.Found,
		})
	}

	printInfo("Heuristic comparison for n=%d", n)
	printCompareTable(rows)
	prog.done(fmt.Sprintf("Compared %d configurations", len(compareConfigs)))
	return nil
}
