// Package facade adapts the simulated backend client to the
// recommendation-settings API.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/recommendation"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ recommendation.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) GetSettings(ctx context.Context) (*recommendation.Settings, error) {
	return f.client.GetRecommendationSettings(ctx)
}

func (f *Facade) UpdateSettings(ctx context.Context, settings recommendation.Settings) (*recommendation.Settings, error) {
	return f.client.UpdateRecommendationSettings(ctx, settings)
}
