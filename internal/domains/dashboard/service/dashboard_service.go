package service

import (
	"context"
	"time"

	"bookadmin-backend/internal/domains/dashboard"
	"bookadmin-backend/internal/query"
)

const statsCacheTTL = time.Minute

// ServiceInterface is the dashboard business layer.
type ServiceInterface interface {
	GetStats(ctx context.Context) (*dashboard.Stats, error)
}

type DashboardService struct {
	api     dashboard.API
	querier *query.Querier
}

// NewService - constructor with DI.
func NewService(api dashboard.API, querier *query.Querier) ServiceInterface {
	return &DashboardService{api: api, querier: querier}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	var stats dashboard.Stats
	_, err := s.querier.Fetch(ctx, query.Key("dashboard", "stats"), statsCacheTTL, &stats, func(ctx context.Context) (interface{}, error) {
		return s.api.GetStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
