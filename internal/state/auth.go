// Package state holds the server-side session and view state that the
// admin panel reads between requests: the authenticated session and the
// book-list filter/pagination snapshot.
package state

import (
	"context"
	"sync"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/pkg/cache"
	"bookadmin-backend/pkg/logger"
)

// authStorageKey is the durable record for the session, so a restart
// rehydrates instead of logging everyone out.
const authStorageKey = "bookadmin:auth-storage"

type authRecord struct {
	User            *auth.SessionUser `json:"user"`
	Token           string            `json:"token"`
	IsAuthenticated bool              `json:"isAuthenticated"`
}

// AuthStore is the session container. All transitions are atomic:
// readers never observe a token without its user or vice versa.
// Persistence is best effort; a broken cache degrades to memory-only.
type AuthStore struct {
	mu    sync.RWMutex
	cache cache.Cache
	rec   authRecord
}

// NewAuthStore builds the store and rehydrates from the durable record
// if one exists. Pass a nil cache for a memory-only store.
func NewAuthStore(ctx context.Context, c cache.Cache) *AuthStore {
	s := &AuthStore{cache: c}
	if c == nil {
		return s
	}
	var rec authRecord
	hit, err := c.Get(ctx, authStorageKey, &rec)
	if err != nil {
		logger.Warn("auth store hydrate failed", err)
		return s
	}
	if hit {
		s.rec = rec
	}
	return s
}

// Login stores the session user and token and marks the session
// authenticated, in one transition.
func (s *AuthStore) Login(ctx context.Context, user auth.SessionUser, token string) {
	s.mu.Lock()
	u := user
	s.rec = authRecord{User: &u, Token: token, IsAuthenticated: true}
	s.mu.Unlock()
	s.persist(ctx)
}

// Logout clears the session and removes the durable record.
func (s *AuthStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.rec = authRecord{}
	s.mu.Unlock()
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, authStorageKey); err != nil {
		logger.Warn("auth store logout persist failed", err)
	}
}

// UpdateUser merges a profile patch into the session user. With no
// session user yet the patch merges into an empty record, matching the
// permissive update contract.
func (s *AuthStore) UpdateUser(ctx context.Context, patch auth.SessionUserPatch) auth.SessionUser {
	s.mu.Lock()
	if s.rec.User == nil {
		s.rec.User = &auth.SessionUser{}
	}
	if patch.Name != nil {
		s.rec.User.Name = *patch.Name
	}
	if patch.Email != nil {
		s.rec.User.Email = *patch.Email
	}
	merged := *s.rec.User
	s.mu.Unlock()
	s.persist(ctx)
	return merged
}

// User returns the session user, or nil when logged out.
func (s *AuthStore) User() *auth.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rec.User == nil {
		return nil
	}
	u := *s.rec.User
	return &u
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.Token
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.IsAuthenticated
}

func (s *AuthStore) persist(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.mu.RLock()
	rec := s.rec
	s.mu.RUnlock()
	if err := s.cache.Set(ctx, authStorageKey, rec, 0); err != nil {
		logger.Warn("auth store persist failed", err)
	}
}
