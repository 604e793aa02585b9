package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nqueens/pkg/errors"
	"github.com/matzehuels/nqueens/pkg/pipeline"
)

// Config holds file-backed defaults for the CLI. Every field can be
// overridden per invocation by the corresponding flag.
//
// The file lives at ~/.config/nqueens/config.toml (XDG_CONFIG_HOME is
// honored) and looks like:
//
//	[solver]
//	mrv = true
//	degree = true
//	lcv = true
//	strategy = "backtracking"
//	seed = 42
//
//	[cache]
//	enabled = true
//	redis_addr = ""
//
//	[serve]
//	addr = ":8421"
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// SolverConfig sets default solve options.
type SolverConfig struct {
	MRV      bool   `toml:"mrv"`
	Degree   bool   `toml:"degree"`
	LCV      bool   `toml:"lcv"`
	Strategy string `toml:"strategy"`
	Seed     int64  `toml:"seed"`
}

// CacheConfig selects the result-cache backend.
type CacheConfig struct {
	Enabled   bool   `toml:"enabled"`
	RedisAddr string `toml:"redis_addr"`
}

// ServeConfig sets HTTP server defaults.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists:
// all heuristics on, file-backed caching, serve on :8421.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			MRV:      true,
			Degree:   true,
			LCV:      true,
			Strategy: pipeline.StrategyBacktracking,
			Seed:     pipeline.DefaultSeed,
		},
		Cache: CacheConfig{Enabled: true},
		Serve: ServeConfig{Addr: ":8421"},
	}
}

// LoadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error: defaults are returned.
// File values overlay the defaults, so a partial file is fine.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if cfg.Solver.Strategy != "" {
		if err := pipeline.ValidateStrategy(cfg.Solver.Strategy); err != nil {
			return DefaultConfig(), err
		}
	}
	return cfg, nil
}

// configPath returns the config file path using the XDG standard.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
