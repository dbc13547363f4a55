package category

import "context"

// API is the category resource seam. ListAll backs the filter dropdown
// on the book list screen and skips pagination.
type API interface {
	List(ctx context.Context, req ListCategoriesRequest) (*ListCategoriesResult, error)
	ListAll(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, req SaveCategoryRequest) (*Category, error)
	Update(ctx context.Context, id string, req SaveCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id string) (*DeleteSummary, error)
}
