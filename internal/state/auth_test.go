package state

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin-backend/internal/domains/auth"
	infraCache "bookadmin-backend/internal/infrastructure/cache"
)

func newTestSessionCache(t *testing.T) *infraCache.RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return infraCache.NewRedisCacheFromClient(client)
}

func adminSessionUser() auth.SessionUser {
	return auth.SessionUser{ID: "user-1", Name: "Admin User", Email: "admin@example.com", Role: "admin"}
}

func TestAuthStoreLoginLogout(t *testing.T) {
	ctx := context.Background()
	store := NewAuthStore(ctx, newTestSessionCache(t))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())

	store.Login(ctx, adminSessionUser(), "token-123")

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "token-123", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "user-1", store.User().ID)

	store.Logout(ctx)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}

func TestAuthStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cache := newTestSessionCache(t)

	first := NewAuthStore(ctx, cache)
	first.Login(ctx, adminSessionUser(), "token-abc")

	// A second store over the same cache simulates a process restart.
	second := NewAuthStore(ctx, cache)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "token-abc", second.Token())
	require.NotNil(t, second.User())
	assert.Equal(t, "admin@example.com", second.User().Email)
}

func TestAuthStoreLogoutClearsDurableRecord(t *testing.T) {
	ctx := context.Background()
	cache := newTestSessionCache(t)

	first := NewAuthStore(ctx, cache)
	first.Login(ctx, adminSessionUser(), "token-abc")
	first.Logout(ctx)

	exists, err := cache.Exists(ctx, "bookadmin:auth-storage")
	require.NoError(t, err)
	assert.False(t, exists)

	second := NewAuthStore(ctx, cache)
	assert.False(t, second.IsAuthenticated())
}

func TestAuthStoreUpdateUser(t *testing.T) {
	ctx := context.Background()
	store := NewAuthStore(ctx, newTestSessionCache(t))
	store.Login(ctx, adminSessionUser(), "token")

	name := "Renamed Admin"
	merged := store.UpdateUser(ctx, auth.SessionUserPatch{Name: &name})

	assert.Equal(t, "Renamed Admin", merged.Name)
	assert.Equal(t, "admin@example.com", merged.Email, "unpatched fields keep their value")
	assert.Equal(t, "Renamed Admin", store.User().Name)
}

func TestAuthStoreUpdateUserWithoutSession(t *testing.T) {
	ctx := context.Background()
	store := NewAuthStore(ctx, nil)

	// With nobody logged in the patch merges into an empty record.
	email := "new@example.com"
	merged := store.UpdateUser(ctx, auth.SessionUserPatch{Email: &email})

	assert.Equal(t, "new@example.com", merged.Email)
	assert.Empty(t, merged.ID)
	assert.False(t, store.IsAuthenticated())
}

func TestAuthStoreWorksWithoutCache(t *testing.T) {
	ctx := context.Background()
	store := NewAuthStore(ctx, nil)

	store.Login(ctx, adminSessionUser(), "token")
	assert.True(t, store.IsAuthenticated())

	store.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
}
