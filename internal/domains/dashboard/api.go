package dashboard

import "context"

// API is the dashboard resource seam.
type API interface {
	GetStats(ctx context.Context) (*Stats, error)
}
