package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/internal/shared/apierr"
	"bookadmin-backend/internal/state"
	"bookadmin-backend/pkg/cache"
)

// fakeAPI records list calls and serves a fixed collection of 21 books
// so page math is easy to reason about.
type fakeAPI struct {
	book.API

	books     []book.Book
	listCalls []book.ListBooksRequest
	listErr   error
}

func newFakeAPI(n int) *fakeAPI {
	books := make([]book.Book, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, book.Book{ID: bookID(i), Title: "Title"})
	}
	return &fakeAPI{books: books}
}

func bookID(n int) string {
	return fmt.Sprintf("book-%d", n)
}

func (f *fakeAPI) List(ctx context.Context, req book.ListBooksRequest) (*book.ListBooksResult, error) {
	f.listCalls = append(f.listCalls, req)
	if f.listErr != nil {
		return nil, f.listErr
	}
	start := (req.Page - 1) * req.Limit
	if start > len(f.books) {
		start = len(f.books)
	}
	end := start + req.Limit
	if end > len(f.books) {
		end = len(f.books)
	}
	return &book.ListBooksResult{
		Books: f.books[start:end],
		Total: len(f.books),
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

func (f *fakeAPI) Get(ctx context.Context, id string) (*book.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeAPI) Create(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	b := book.Book{ID: "book-new", Title: req.Title, Author: req.Author}
	f.books = append(f.books, b)
	return &b, nil
}

func (f *fakeAPI) BatchDelete(ctx context.Context, ids []string) (*book.BatchDeleteSummary, error) {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	remaining := f.books[:0]
	deleted := []string{}
	for _, b := range f.books {
		if _, ok := idSet[b.ID]; ok {
			deleted = append(deleted, b.ID)
			continue
		}
		remaining = append(remaining, b)
	}
	f.books = remaining
	return &book.BatchDeleteSummary{Success: true, DeletedCount: len(deleted), DeletedIDs: deleted}, nil
}

func newTestService(api book.API) (ServiceInterface, *state.BookListStore) {
	list := state.NewBookListStore()
	return NewService(api, query.NewQuerier(cache.NewMemoryCache()), list), list
}

func TestListCachesIdenticalRequests(t *testing.T) {
	api := newFakeAPI(21)
	svc, _ := newTestService(api)
	ctx := context.Background()

	req := book.ListBooksRequest{Page: 1, Limit: 10}
	_, err := svc.List(ctx, req)
	require.NoError(t, err)
	_, err = svc.List(ctx, req)
	require.NoError(t, err)

	assert.Len(t, api.listCalls, 1, "the second identical request must come from cache")
}

func TestListWritesBackViewState(t *testing.T) {
	api := newFakeAPI(21)
	svc, list := newTestService(api)

	result, err := svc.List(context.Background(), book.ListBooksRequest{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 21, result.Total)
	assert.Equal(t, 21, list.Pagination().Total)
	assert.Equal(t, 2, list.Pagination().Page)
	assert.Len(t, list.Books(), 10)
}

func TestListFilterChangeResetsPage(t *testing.T) {
	api := newFakeAPI(21)
	svc, list := newTestService(api)
	ctx := context.Background()

	_, err := svc.List(ctx, book.ListBooksRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 3, list.Pagination().Page)

	// The same page param with a new search must not survive: the filter
	// change snaps the cursor back to the first page.
	_, err = svc.List(ctx, book.ListBooksRequest{Search: "golang", Page: 3, Limit: 10})
	require.NoError(t, err)

	last := api.listCalls[len(api.listCalls)-1]
	assert.Equal(t, "golang", last.Search)
	assert.Equal(t, 1, last.Page)
	assert.Equal(t, 1, list.Pagination().Page)
}

func TestListSurfacesValidationFailure(t *testing.T) {
	api := newFakeAPI(21)
	svc, list := newTestService(api)
	ctx := context.Background()

	_, err := svc.List(ctx, book.ListBooksRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	// An invalid sort field must fail loudly even though a previous
	// page is available, and must not leak into the stored filters.
	result, err := svc.List(ctx, book.ListBooksRequest{SortBy: "price", Page: 1, Limit: 10})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apierr.IsKind(err, apierr.KindValidation))
	assert.Equal(t, "title", list.Filters().SortBy)
	assert.Len(t, api.listCalls, 1, "the invalid request must never reach the source")
}

func TestListSurfacesStructuredSourceFailure(t *testing.T) {
	api := newFakeAPI(21)
	svc, _ := newTestService(api)
	ctx := context.Background()

	_, err := svc.List(ctx, book.ListBooksRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	api.listErr = apierr.BadRequest("bad cursor")
	result, err := svc.List(ctx, book.ListBooksRequest{Page: 2, Limit: 10})
	require.Error(t, err, "structured failures must not degrade to the previous page")
	assert.Nil(t, result)
	assert.True(t, apierr.IsKind(err, apierr.KindBadRequest))
}

func TestListServesPreviousPageOnSourceFailure(t *testing.T) {
	api := newFakeAPI(21)
	svc, _ := newTestService(api)
	ctx := context.Background()

	first, err := svc.List(ctx, book.ListBooksRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	api.listErr = errors.New("backend down")
	second, err := svc.List(ctx, book.ListBooksRequest{Page: 2, Limit: 10})
	require.NoError(t, err, "a failed refetch falls back to the previous page")
	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, first.Page, second.Page)
}

func TestCreateInvalidatesListCache(t *testing.T) {
	api := newFakeAPI(21)
	svc, _ := newTestService(api)
	ctx := context.Background()

	req := book.ListBooksRequest{Page: 1, Limit: 10}
	_, err := svc.List(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, book.CreateBookRequest{Title: "New", Author: "A"})
	require.NoError(t, err)

	_, err = svc.List(ctx, req)
	require.NoError(t, err)
	assert.Len(t, api.listCalls, 2, "the mutation must force a refetch")
}

func TestBatchDeleteSnapsBackFromEmptiedPage(t *testing.T) {
	api := newFakeAPI(21)
	svc, list := newTestService(api)
	ctx := context.Background()

	// Land on page 3, which holds only book-21.
	_, err := svc.List(ctx, book.ListBooksRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 3, list.Pagination().Page)
	require.Equal(t, 21, list.Pagination().Total)

	summary, err := svc.BatchDelete(ctx, []string{bookID(21)})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DeletedCount)

	// The cursor snapped to page one and the list was refetched there.
	assert.Equal(t, 1, list.Pagination().Page)
	assert.Equal(t, 20, list.Pagination().Total)
	last := api.listCalls[len(api.listCalls)-1]
	assert.Equal(t, 1, last.Page)
	assert.Len(t, list.Books(), 10)
}

func TestBatchDeleteKeepsPageWhenStillInRange(t *testing.T) {
	api := newFakeAPI(21)
	svc, list := newTestService(api)
	ctx := context.Background()

	_, err := svc.List(ctx, book.ListBooksRequest{Page: 2, Limit: 10})
	require.NoError(t, err)

	_, err = svc.BatchDelete(ctx, []string{bookID(21)})
	require.NoError(t, err)

	// 20 books remain, so page 2 is still valid.
	assert.Equal(t, 2, list.Pagination().Page)
	last := api.listCalls[len(api.listCalls)-1]
	assert.Equal(t, 2, last.Page)
}

func TestGetNotFoundPassesThrough(t *testing.T) {
	api := newFakeAPI(5)
	svc, _ := newTestService(api)

	_, err := svc.Get(context.Background(), "book-99")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
