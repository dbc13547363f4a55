// Package facade adapts the simulated backend client to the dashboard
// API.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/dashboard"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ dashboard.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	return f.client.GetDashboardStats(ctx)
}
