// Package cli implements the nqueens command-line interface.
//
// This package provides commands for solving N-Queens boards with the
// systematic backtracking strategy or the best-first variant, comparing
// heuristic configurations, serving solves over HTTP, and managing the
// local result cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Find a placement for one board size
//   - compare: Run every heuristic configuration for one board size
//   - serve: Expose solves over an HTTP API
//   - cache: Manage the solve result cache
//
// # Configuration
//
// Defaults for heuristics, caching, and the serve address can be set in
// a TOML file at ~/.config/nqueens/config.toml; flags always win over
// file values.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nqueens/pkg/buildinfo"
	"github.com/matzehuels/nqueens/pkg/cache"
	"github.com/matzehuels/nqueens/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "nqueens"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config Config
}

// New creates a new CLI instance with a default logger and file-backed
// configuration defaults.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := LoadConfig("")
	if err != nil {
		c.Logger.Warn("ignoring config file", "err", err)
		cfg = DefaultConfig()
	}
	c.config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "nqueens solves the N-Queens placement problem",
		Long:         `nqueens places N mutually non-attacking queens on an N×N board using constraint-satisfaction backtracking with forward checking and classical ordering heuristics (MRV, degree, LCV), plus a best-first alternative.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(ctx, noCache), c.Logger)
}

// newCache picks the cache backend: disabled, redis (if configured), or
// the local file cache. Backend setup failures degrade to no caching
// rather than failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || !c.config.Cache.Enabled {
		return cache.NewNullCache()
	}
	if addr := c.config.Cache.RedisAddr; addr != "" {
		rc, err := cache.NewRedisCache(ctx, addr)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, falling back to file cache", "addr", addr, "err", err)
		} else {
			return rc
		}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/nqueens/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
