// Package facade adapts the simulated backend client to the book
// resource API.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ book.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) List(ctx context.Context, req book.ListBooksRequest) (*book.ListBooksResult, error) {
	return f.client.ListBooks(ctx, req)
}

func (f *Facade) Get(ctx context.Context, id string) (*book.Book, error) {
	return f.client.GetBook(ctx, id)
}

func (f *Facade) Create(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	return f.client.CreateBook(ctx, req)
}

func (f *Facade) Update(ctx context.Context, id string, req book.UpdateBookRequest) (*book.Book, error) {
	return f.client.UpdateBook(ctx, id, req)
}

func (f *Facade) Delete(ctx context.Context, id string) (*book.DeleteSummary, error) {
	return f.client.DeleteBook(ctx, id)
}

func (f *Facade) BatchDelete(ctx context.Context, ids []string) (*book.BatchDeleteSummary, error) {
	return f.client.BatchDeleteBooks(ctx, ids)
}

func (f *Facade) Restore(ctx context.Context, ids []string) (*book.RestoreSummary, error) {
	return f.client.RestoreBooks(ctx, ids)
}
