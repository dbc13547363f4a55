// Package query coordinates reads against the simulated backend: cache
// lookups keyed by request hash, in-flight deduplication, prefix-based
// invalidation, and a last-known-good snapshot per collection so list
// views can keep showing data while a refetch is underway.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"bookadmin-backend/pkg/cache"
)

// Status of a resolved fetch.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result describes how a fetch resolved. FromCache means the payload
// was served without hitting the data source; Stale means the data
// source answered after its collection was invalidated mid-flight, so
// the payload was returned to the caller but not written back.
type Result struct {
	Status    Status
	FromCache bool
	Stale     bool
	Shared    bool
}

// FetchFunc loads fresh data from the source. The returned value must
// be JSON-marshalable.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Querier is safe for concurrent use.
type Querier struct {
	cache cache.Cache
	group singleflight.Group

	mu sync.Mutex
	// Per-collection invalidation counters. A fetch snapshots the
	// counter before calling the source; a mismatch afterwards means
	// the result is stale and must not repopulate the cache.
	generations map[string]uint64
	// Last successful payload per collection, for callers that want to
	// keep showing the previous page while a new one loads or fails.
	previous map[string][]byte
}

func NewQuerier(c cache.Cache) *Querier {
	return &Querier{
		cache:       c,
		generations: make(map[string]uint64),
		previous:    make(map[string][]byte),
	}
}

// Key builds a cache key from a collection prefix and the request
// parts that distinguish one query from another. The parts are hashed
// so arbitrary filter strings cannot produce unbounded key material.
func Key(prefix string, parts ...string) string {
	keyStr := prefix + ":" + strings.Join(parts, ":")
	return fmt.Sprintf("%s:%x", prefix, hashString(keyStr))
}

// djb2
func hashString(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint32(s[i])
	}
	return h
}

// Fetch resolves key into dest: cache first, then the source. Source
// calls for the same key are collapsed into one in-flight call. A
// successful source result is written back with the given ttl unless
// the collection was invalidated while the call was in flight.
func (q *Querier) Fetch(ctx context.Context, key string, ttl time.Duration, dest interface{}, fn FetchFunc) (Result, error) {
	hit, err := q.cache.Get(ctx, key, dest)
	if err == nil && hit {
		return Result{Status: StatusSuccess, FromCache: true}, nil
	}
	// A cache read error degrades to a miss.

	prefix := keyPrefix(key)
	gen := q.generation(prefix)

	v, err, shared := q.group.Do(key, func() (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return Result{Status: StatusError, Shared: shared}, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return Result{Status: StatusError, Shared: shared}, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return Result{Status: StatusError, Shared: shared}, err
	}

	stale := q.generation(prefix) != gen
	if !stale {
		// Write-back is best effort; a failed Set just means the next
		// read goes to the source again.
		_ = q.cache.Set(ctx, key, v, ttl)
		q.mu.Lock()
		q.previous[prefix] = payload
		q.mu.Unlock()
	}
	return Result{Status: StatusSuccess, Stale: stale, Shared: shared}, nil
}

// Previous restores the last successful payload for the collection
// into dest. It reports false when no snapshot exists.
func (q *Querier) Previous(prefix string, dest interface{}) bool {
	q.mu.Lock()
	payload, ok := q.previous[prefix]
	q.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

// Invalidate drops every cached entry for the collection and marks
// in-flight fetches for it stale.
func (q *Querier) Invalidate(ctx context.Context, prefix string) error {
	q.mu.Lock()
	q.generations[prefix]++
	delete(q.previous, prefix)
	q.mu.Unlock()
	return q.cache.DeletePattern(ctx, prefix+":*")
}

func (q *Querier) generation(prefix string) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.generations[prefix]
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
