// Package cache stores solve results so repeated runs with identical
// options skip the search entirely.
//
// The systematic backtracking strategy is deterministic: the same board
// size and heuristic flags always produce the same solution and counters,
// which makes its results safe to cache indefinitely. Randomized
// strategies are never cached (the caller decides, see pkg/pipeline).
//
// # Backends
//
//   - [NullCache]: caching disabled; every lookup misses.
//   - [FileCache]: JSON entries under a local directory, for CLI use.
//   - [RedisCache]: shared cache for multi-instance server deployments.
//
// Keys are built with [Key], which hashes the identifying option tuple
// with SHA-256 so backends never see raw parameters.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all result-cache backends implement.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the value for key. The boolean reports whether the
	// key was present and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the value for key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
