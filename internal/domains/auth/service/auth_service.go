package service

import (
	"context"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/shared/apierr"
	"bookadmin-backend/internal/state"
	"bookadmin-backend/pkg/jwt"
)

// ServiceInterface is the auth business layer consumed by handlers.
type ServiceInterface interface {
	Login(ctx context.Context, credentials auth.Credentials) (*auth.Session, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, patch auth.SessionUserPatch) auth.SessionUser
	Current(ctx context.Context) (*auth.SessionUser, bool)
}

// AuthService checks credentials against the backend, issues tokens and
// keeps the session store in sync.
type AuthService struct {
	api     auth.API
	tokens  *jwt.Manager
	session *state.AuthStore
}

// NewService - constructor with DI.
func NewService(api auth.API, tokens *jwt.Manager, session *state.AuthStore) ServiceInterface {
	return &AuthService{api: api, tokens: tokens, session: session}
}

// Login validates the credentials, verifies them with the backend,
// issues a token and records the session in one transition.
func (s *AuthService) Login(ctx context.Context, credentials auth.Credentials) (*auth.Session, error) {
	if err := credentials.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}

	user, err := s.api.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apierr.Internal("failed to issue session token")
	}

	s.session.Login(ctx, *user, token)
	return &auth.Session{User: *user, Token: token}, nil
}

func (s *AuthService) Logout(ctx context.Context) {
	s.session.Logout(ctx)
}

func (s *AuthService) UpdateProfile(ctx context.Context, patch auth.SessionUserPatch) auth.SessionUser {
	return s.session.UpdateUser(ctx, patch)
}

// Current returns the session user; false when nobody is logged in.
func (s *AuthService) Current(ctx context.Context) (*auth.SessionUser, bool) {
	u := s.session.User()
	if u == nil || !s.session.IsAuthenticated() {
		return nil, false
	}
	return u, true
}
