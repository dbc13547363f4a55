package state

import (
	"sync"

	"bookadmin-backend/internal/domains/book"
)

// Filters are the book-list filter controls.
type Filters struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// Pagination is the book-list page cursor. Total is the filtered
// collection size reported by the last fetch.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

func defaultFilters() Filters {
	return Filters{SortBy: "title", SortOrder: "asc"}
}

// BookListStore is the book-list view state: the current page of books
// plus the filters and pagination that produced it.
type BookListStore struct {
	mu         sync.RWMutex
	books      []book.Book
	filters    Filters
	pagination Pagination
}

func NewBookListStore() *BookListStore {
	return &BookListStore{
		filters:    defaultFilters(),
		pagination: Pagination{Page: 1, Limit: 10},
	}
}

func (s *BookListStore) Books() []book.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]book.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *BookListStore) SetBooks(books []book.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = make([]book.Book, len(books))
	copy(s.books, books)
}

func (s *BookListStore) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *BookListStore) Pagination() Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

// FilterPatch / PaginationPatch merge partial updates; nil fields keep
// the current value.
type FilterPatch struct {
	Search    *string
	Category  *string
	SortBy    *string
	SortOrder *string
}

type PaginationPatch struct {
	Page  *int
	Limit *int
	Total *int
}

// SetFilters merges the patch and snaps the page back to 1 in the same
// transition, so a filter change can never keep an out-of-range page.
func (s *BookListStore) SetFilters(patch FilterPatch) (Filters, Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}
	if patch.Category != nil {
		s.filters.Category = *patch.Category
	}
	if patch.SortBy != nil {
		s.filters.SortBy = *patch.SortBy
	}
	if patch.SortOrder != nil {
		s.filters.SortOrder = *patch.SortOrder
	}
	s.pagination.Page = 1
	return s.filters, s.pagination
}

// SetPagination merges the patch without touching filters.
func (s *BookListStore) SetPagination(patch PaginationPatch) Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Page != nil {
		s.pagination.Page = *patch.Page
	}
	if patch.Limit != nil {
		s.pagination.Limit = *patch.Limit
	}
	if patch.Total != nil {
		s.pagination.Total = *patch.Total
	}
	return s.pagination
}

// ResetFilters restores the default filters and the first page. Limit
// and total survive the reset.
func (s *BookListStore) ResetFilters() (Filters, Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = defaultFilters()
	s.pagination.Page = 1
	return s.filters, s.pagination
}
