package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "a", Count: 3}, 0))

	var got payload
	hit, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "a", Count: 3}, got)

	hit, err = c.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var got payload
	hit, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", payload{}, 0))
	require.NoError(t, c.Set(ctx, "b", payload{}, 0))
	require.NoError(t, c.Delete(ctx, "a", "b"))

	exists, err := c.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "books:1", payload{}, 0))
	require.NoError(t, c.Set(ctx, "books:2", payload{}, 0))
	require.NoError(t, c.Set(ctx, "users:1", payload{}, 0))

	require.NoError(t, c.DeletePattern(ctx, "books:*"))

	for key, want := range map[string]bool{"books:1": false, "books:2": false, "users:1": true} {
		exists, err := c.Exists(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, exists, key)
	}
}
