package service

import (
	"context"
	"time"

	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/pkg/logger"
)

const settingsCacheTTL = 5 * time.Minute

// ServiceInterface is the recommendation-settings business layer.
type ServiceInterface interface {
	GetSettings(ctx context.Context) (*recommendation.Settings, error)
	UpdateSettings(ctx context.Context, settings recommendation.Settings) (*recommendation.Settings, error)
}

type RecommendationService struct {
	api     recommendation.API
	querier *query.Querier
}

// NewService - constructor with DI.
func NewService(api recommendation.API, querier *query.Querier) ServiceInterface {
	return &RecommendationService{api: api, querier: querier}
}

func (s *RecommendationService) GetSettings(ctx context.Context) (*recommendation.Settings, error) {
	var settings recommendation.Settings
	_, err := s.querier.Fetch(ctx, query.Key("settings", "recommendation"), settingsCacheTTL, &settings, func(ctx context.Context) (interface{}, error) {
		return s.api.GetSettings(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *RecommendationService) UpdateSettings(ctx context.Context, settings recommendation.Settings) (*recommendation.Settings, error) {
	updated, err := s.api.UpdateSettings(ctx, settings)
	if err != nil {
		return nil, err
	}
	if err := s.querier.Invalidate(ctx, "settings"); err != nil {
		logger.Warn("settings cache invalidation failed", err)
	}
	return updated, nil
}
