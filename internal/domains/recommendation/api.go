package recommendation

import "context"

// API is the recommendation-settings resource seam.
type API interface {
	GetSettings(ctx context.Context) (*Settings, error)
	UpdateSettings(ctx context.Context, settings Settings) (*Settings, error)
}
