package book

import "context"

// API is the per-resource seam between the UI layer and the backend.
// Today the only implementation forwards to the mock client; a real
// network client can be substituted here without touching call sites.
type API interface {
	List(ctx context.Context, req ListBooksRequest) (*ListBooksResult, error)
	Get(ctx context.Context, id string) (*Book, error)
	Create(ctx context.Context, req CreateBookRequest) (*Book, error)
	Update(ctx context.Context, id string, req UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, id string) (*DeleteSummary, error)
	BatchDelete(ctx context.Context, ids []string) (*BatchDeleteSummary, error)
	Restore(ctx context.Context, ids []string) (*RestoreSummary, error)
}
