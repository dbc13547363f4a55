package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin-backend/pkg/cache"
)

type page struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

func TestKeyIsStableAndDistinct(t *testing.T) {
	a := Key("books", "list", "search", "1", "10")
	b := Key("books", "list", "search", "1", "10")
	c := Key("books", "list", "other", "1", "10")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "books:")
}

func TestFetchCachesResult(t *testing.T) {
	q := NewQuerier(cache.NewMemoryCache())
	ctx := context.Background()

	var calls int32
	fn := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return page{Items: []string{"a", "b"}, Total: 2}, nil
	}

	key := Key("books", "list", "1")

	var first page
	result, err := q.Fetch(ctx, key, time.Minute, &first, fn)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, 2, first.Total)

	var second page
	result, err = q.Fetch(ctx, key, time.Minute, &second, fn)
	require.NoError(t, err)
	assert.True(t, result.FromCache)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchDeduplicatesConcurrentCalls(t *testing.T) {
	q := NewQuerier(cache.NewMemoryCache())
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	fn := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return page{Total: 1}, nil
	}

	key := Key("books", "list", "dedup")
	const workers = 5

	var started, done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer done.Done()
			started.Done()
			var p page
			_, err := q.Fetch(ctx, key, time.Minute, &p, fn)
			assert.NoError(t, err)
			assert.Equal(t, 1, p.Total)
		}()
	}

	started.Wait()
	// Give every worker a chance to miss the cache and join the flight.
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchAbandonsStaleResult(t *testing.T) {
	q := NewQuerier(cache.NewMemoryCache())
	ctx := context.Background()

	key := Key("books", "list", "stale")

	var p page
	result, err := q.Fetch(ctx, key, time.Minute, &p, func(ctx context.Context) (interface{}, error) {
		// The collection is invalidated while this fetch is in flight.
		require.NoError(t, q.Invalidate(ctx, "books"))
		return page{Total: 7}, nil
	})
	require.NoError(t, err)
	assert.True(t, result.Stale)
	assert.Equal(t, 7, p.Total, "the stale payload is still delivered to the caller")

	// The stale result must not have repopulated the cache.
	var calls int32
	var again page
	result, err = q.Fetch(ctx, key, time.Minute, &again, func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return page{Total: 8}, nil
	})
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPreviousSnapshot(t *testing.T) {
	q := NewQuerier(cache.NewMemoryCache())
	ctx := context.Background()

	var p page
	_, err := q.Fetch(ctx, Key("books", "list", "1"), time.Minute, &p, func(ctx context.Context) (interface{}, error) {
		return page{Items: []string{"x"}, Total: 1}, nil
	})
	require.NoError(t, err)

	var snap page
	require.True(t, q.Previous("books", &snap))
	assert.Equal(t, 1, snap.Total)

	// Other collections have no snapshot.
	assert.False(t, q.Previous("users", &snap))

	// Invalidation drops the snapshot along with the cached pages.
	require.NoError(t, q.Invalidate(ctx, "books"))
	assert.False(t, q.Previous("books", &snap))
}

func TestFetchPropagatesSourceError(t *testing.T) {
	q := NewQuerier(cache.NewMemoryCache())

	sourceErr := errors.New("backend down")
	var p page
	result, err := q.Fetch(context.Background(), Key("books", "list", "err"), time.Minute, &p, func(ctx context.Context) (interface{}, error) {
		return nil, sourceErr
	})
	require.ErrorIs(t, err, sourceErr)
	assert.Equal(t, StatusError, result.Status)
}

func TestInvalidateScopesToPrefix(t *testing.T) {
	q := NewQuerier(cache.NewMemoryCache())
	ctx := context.Background()

	var calls int32
	fetch := func(key string) {
		var p page
		_, err := q.Fetch(ctx, key, time.Minute, &p, func(ctx context.Context) (interface{}, error) {
			atomic.AddInt32(&calls, 1)
			return page{Total: 1}, nil
		})
		require.NoError(t, err)
	}

	bookKey := Key("books", "list", "1")
	userKey := Key("users", "list", "1")
	fetch(bookKey)
	fetch(userKey)
	require.NoError(t, q.Invalidate(ctx, "books"))

	fetch(bookKey) // refetches
	fetch(userKey) // still cached
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
