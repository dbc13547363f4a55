package service

import (
	"context"
	"strconv"
	"time"

	"bookadmin-backend/internal/domains/book"
	"bookadmin-backend/internal/query"
	"bookadmin-backend/internal/shared/apierr"
	"bookadmin-backend/internal/state"
	"bookadmin-backend/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

// ServiceInterface is the book business layer consumed by handlers.
type ServiceInterface interface {
	List(ctx context.Context, req book.ListBooksRequest) (*book.ListBooksResult, error)
	Get(ctx context.Context, id string) (*book.Book, error)
	Create(ctx context.Context, req book.CreateBookRequest) (*book.Book, error)
	Update(ctx context.Context, id string, req book.UpdateBookRequest) (*book.Book, error)
	Delete(ctx context.Context, id string) (*book.DeleteSummary, error)
	BatchDelete(ctx context.Context, ids []string) (*book.BatchDeleteSummary, error)
	Restore(ctx context.Context, ids []string) (*book.RestoreSummary, error)
}

// BookService coordinates the book resource: the backend facade, the
// request-keyed cache, and the book-list view state.
type BookService struct {
	api     book.API
	querier *query.Querier
	list    *state.BookListStore
}

// NewService - constructor with DI.
func NewService(api book.API, querier *query.Querier, list *state.BookListStore) ServiceInterface {
	return &BookService{api: api, querier: querier, list: list}
}

func listCacheKey(req book.ListBooksRequest) string {
	return query.Key("books",
		"list",
		req.Search,
		req.Category,
		req.SortBy,
		req.SortOrder,
		strconv.Itoa(req.Page),
		strconv.Itoa(req.Limit),
	)
}

// List fetches one page of books. The incoming request is reconciled
// with the stored view state first: a filter change snaps back to page
// one, a plain page change does not. After a successful fetch the
// books and the filtered total are written back into the view state.
func (s *BookService) List(ctx context.Context, req book.ListBooksRequest) (*book.ListBooksResult, error) {
	req.SetDefaults()
	// Reject bad requests before they can leak into the view state.
	if err := req.Validate(); err != nil {
		return nil, apierr.FromValidation(err)
	}
	req = s.reconcile(req)

	result, err := s.fetchList(ctx, req)
	if err != nil {
		// Structured failures carry meaning for the caller and must
		// surface. Only an unclassified source failure degrades to the
		// previous page, so the table is not blanked mid-session.
		if _, structured := apierr.From(err); structured {
			return nil, err
		}
		var prev book.ListBooksResult
		if s.querier.Previous("books", &prev) {
			logger.Warn("book list fetch failed, serving previous page", err)
			return &prev, nil
		}
		return nil, err
	}
	return result, nil
}

// reconcile merges the request into the view state. Filters and page
// go through the store so its page-reset rule applies, then the
// effective state is read back into the request.
func (s *BookService) reconcile(req book.ListBooksRequest) book.ListBooksRequest {
	current := s.list.Filters()
	incoming := state.Filters{
		Search:    req.Search,
		Category:  req.Category,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if incoming.SortBy == "" {
		incoming.SortBy = current.SortBy
	}

	if incoming != current {
		s.list.SetFilters(state.FilterPatch{
			Search:    &incoming.Search,
			Category:  &incoming.Category,
			SortBy:    &incoming.SortBy,
			SortOrder: &incoming.SortOrder,
		})
	} else {
		s.list.SetPagination(state.PaginationPatch{Page: &req.Page, Limit: &req.Limit})
	}

	filters := s.list.Filters()
	p := s.list.Pagination()
	return book.ListBooksRequest{
		Search:    filters.Search,
		Category:  filters.Category,
		SortBy:    filters.SortBy,
		SortOrder: filters.SortOrder,
		Page:      p.Page,
		Limit:     p.Limit,
	}
}

func (s *BookService) fetchList(ctx context.Context, req book.ListBooksRequest) (*book.ListBooksResult, error) {
	var result book.ListBooksResult
	_, err := s.querier.Fetch(ctx, listCacheKey(req), listCacheTTL, &result, func(ctx context.Context) (interface{}, error) {
		return s.api.List(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.list.SetBooks(result.Books)
	s.list.SetPagination(state.PaginationPatch{Total: &result.Total})
	return &result, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*book.Book, error) {
	var b book.Book
	_, err := s.querier.Fetch(ctx, query.Key("book", id), listCacheTTL, &b, func(ctx context.Context) (interface{}, error) {
		return s.api.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	created, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *BookService) Update(ctx context.Context, id string, req book.UpdateBookRequest) (*book.Book, error) {
	updated, err := s.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id string) (*book.DeleteSummary, error) {
	summary, err := s.api.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return summary, nil
}

// BatchDelete removes the selected books, then repairs the page cursor:
// when the delete empties the tail pages the cursor snaps to page one
// and the first page is refetched immediately, so the caller never sits
// on a page past the end of the collection.
func (s *BookService) BatchDelete(ctx context.Context, ids []string) (*book.BatchDeleteSummary, error) {
	summary, err := s.api.BatchDelete(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	p := s.list.Pagination()
	newTotal := p.Total - summary.DeletedCount
	if newTotal < 0 {
		newTotal = 0
	}
	maxPage := (newTotal + p.Limit - 1) / p.Limit
	if maxPage < 1 {
		maxPage = 1
	}
	if p.Page > maxPage {
		one := 1
		s.list.SetPagination(state.PaginationPatch{Page: &one})
	}

	filters := s.list.Filters()
	p = s.list.Pagination()
	if _, err := s.fetchList(ctx, book.ListBooksRequest{
		Search:    filters.Search,
		Category:  filters.Category,
		SortBy:    filters.SortBy,
		SortOrder: filters.SortOrder,
		Page:      p.Page,
		Limit:     p.Limit,
	}); err != nil {
		logger.Warn("book list refetch after batch delete failed", err)
	}

	return summary, nil
}

func (s *BookService) Restore(ctx context.Context, ids []string) (*book.RestoreSummary, error) {
	summary, err := s.api.Restore(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return summary, nil
}

// invalidate drops both the list pages and the per-book details.
func (s *BookService) invalidate(ctx context.Context) {
	if err := s.querier.Invalidate(ctx, "books"); err != nil {
		logger.Warn("book cache invalidation failed", err)
	}
	if err := s.querier.Invalidate(ctx, "book"); err != nil {
		logger.Warn("book detail cache invalidation failed", err)
	}
}
