// Package facade adapts the simulated backend client to the category
// resource API.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/category"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ category.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) List(ctx context.Context, req category.ListCategoriesRequest) (*category.ListCategoriesResult, error) {
	return f.client.ListCategories(ctx, req)
}

func (f *Facade) ListAll(ctx context.Context) ([]category.Category, error) {
	return f.client.ListAllCategories(ctx)
}

func (f *Facade) Get(ctx context.Context, id string) (*category.Category, error) {
	return f.client.GetCategory(ctx, id)
}

func (f *Facade) Create(ctx context.Context, req category.SaveCategoryRequest) (*category.Category, error) {
	return f.client.CreateCategory(ctx, req)
}

func (f *Facade) Update(ctx context.Context, id string, req category.SaveCategoryRequest) (*category.Category, error) {
	return f.client.UpdateCategory(ctx, id, req)
}

func (f *Facade) Delete(ctx context.Context, id string) (*category.DeleteSummary, error) {
	return f.client.DeleteCategory(ctx, id)
}
