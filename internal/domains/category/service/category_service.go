package service

import (
	"context"
	"strconv"
	"time"

	"bookadmin-backend/internal/domains/category"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

// ServiceInterface is the category business layer consumed by handlers.
type ServiceInterface interface {
	List(ctx context.Context, req category.ListCategoriesRequest) (*category.ListCategoriesResult, error)
	ListAll(ctx context.Context) ([]category.Category, error)
	Get(ctx context.Context, id string) (*category.Category, error)
	Create(ctx context.Context, req category.SaveCategoryRequest) (*category.Category, error)
	Update(ctx context.Context, id string, req category.SaveCategoryRequest) (*category.Category, error)
	Delete(ctx context.Context, id string) (*category.DeleteSummary, error)
}

type CategoryService struct {
	api     category.API
	querier *query.Querier
}

// NewService - constructor with DI.
func NewService(api category.API, querier *query.Querier) ServiceInterface {
	return &CategoryService{api: api, querier: querier}
}

func (s *CategoryService) List(ctx context.Context, req category.ListCategoriesRequest) (*category.ListCategoriesResult, error) {
	req.SetDefaults()

	key := query.Key("categories", "list", strconv.Itoa(req.Page), strconv.Itoa(req.Limit))
	var result category.ListCategoriesResult
	_, err := s.querier.Fetch(ctx, key, listCacheTTL, &result, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAll backs the book-list filter dropdown.
func (s *CategoryService) ListAll(ctx context.Context) ([]category.Category, error) {
	var all []category.Category
	_, err := s.querier.Fetch(ctx, query.Key("categories", "all"), listCacheTTL, &all, func(ctx context.Context) (interface{}, error) {
		return s.api.ListAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*category.Category, error) {
	var cat category.Category
	_, err := s.querier.Fetch(ctx, query.Key("category", id), listCacheTTL, &cat, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) Create(ctx context.Context, req category.SaveCategoryRequest) (*category.Category, error) {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req category.SaveCategoryRequest) (*category.Category, error) {
	updated, err := s.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) (*category.DeleteSummary, error) {
	summary, err := s.api.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return summary, nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if err := s.querier.Invalidate(ctx, "categories"); err != nil {
		logger.Warn("category cache invalidation failed", err)
	}
	if err := s.querier.Invalidate(ctx, "category"); err != nil {
		logger.Warn("category detail cache invalidation failed", err)
	}
}
