package service

import (
	"context"
	"strconv"
	"time"

	"bookadmin-backend/internal/domains/user"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

// ServiceInterface is the user business layer consumed by handlers.
type ServiceInterface interface {
	List(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResult, error)
	Get(ctx context.Context, id string) (*user.User, error)
	Update(ctx context.Context, id string, patch user.Patch) (*user.User, error)
	ToggleStatus(ctx context.Context, id string) (*user.User, error)
	Delete(ctx context.Context, id string) (*user.DeleteSummary, error)

	BatchDelete(ctx context.Context, ids []string) (*user.BatchDeleteSummary, error)
	Restore(ctx context.Context, ids []string) (*user.RestoreSummary, error)
	ChangeRole(ctx context.Context, id string, role user.Role) (*user.User, error)
}

type UserService struct {
	api     user.API
	querier *query.Querier
}

// NewService - constructor with DI.
func NewService(api user.API, querier *query.Querier) ServiceInterface {
	return &UserService{api: api, querier: querier}
}

func (s *UserService) List(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResult, error) {
	req.SetDefaults()

	key := query.Key("users",
		"list",
		req.Search,
		req.Role,
		req.Status,
		req.SortBy,
		req.SortOrder,
		strconv.Itoa(req.Page),
		strconv.Itoa(req.Limit),
	)
	var result user.ListUsersResult
	_, err := s.querier.Fetch(ctx, key, listCacheTTL, &result, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	_, err := s.querier.Fetch(ctx, query.Key("user", id), listCacheTTL, &u, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	updated, err := s.api.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// ToggleStatus flips the account between active and inactive.
func (s *UserService) ToggleStatus(ctx context.Context, id string) (*user.User, error) {
	current, err := s.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := current.Status.Toggle()
	return s.Update(ctx, id, user.Patch{Status: &next})
}

func (s *UserService) Delete(ctx context.Context, id string) (*user.DeleteSummary, error) {
	summary, err := s.api.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return summary, nil
}

// The bulk hooks forward as-is; the backend declines them with a
// structured not-implemented failure.

func (s *UserService) BatchDelete(ctx context.Context, ids []string) (*user.BatchDeleteSummary, error) {
	return s.api.BatchDelete(ctx, ids)
}

func (s *UserService) Restore(ctx context.Context, ids []string) (*user.RestoreSummary, error) {
	return s.api.Restore(ctx, ids)
}

func (s *UserService) ChangeRole(ctx context.Context, id string, role user.Role) (*user.User, error) {
	return s.api.ChangeRole(ctx, id, role)
}

func (s *UserService) invalidate(ctx context.Context) {
	if err := s.querier.Invalidate(ctx, "users"); err != nil {
		logger.Warn("user cache invalidation failed", err)
	}
	if err := s.querier.Invalidate(ctx, "user"); err != nil {
		logger.Warn("user detail cache invalidation failed", err)
	}
}
