package cache

import (
	"context"
	"time"
)

// Cache interface defines the contract for the cache layer.
// Allows swapping implementations (Redis, in-memory).
type Cache interface {
	// Get reads data from cache and unmarshals into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL (0 = no expiry)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching pattern (glob style, e.g. "books:list:*")
	DeletePattern(ctx context.Context, pattern string) error

	// Exists reports whether key is present
	Exists(ctx context.Context, key string) (bool, error)

	// Ping checks the connection
	Ping(ctx context.Context) error
}
