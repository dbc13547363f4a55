package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookadmin-backend/internal/domains/book"
)

func TestBookListStoreDefaults(t *testing.T) {
	s := NewBookListStore()

	assert.Equal(t, Filters{SortBy: "title", SortOrder: "asc"}, s.Filters())
	assert.Equal(t, Pagination{Page: 1, Limit: 10}, s.Pagination())
	assert.Empty(t, s.Books())
}

func TestSetFiltersResetsPage(t *testing.T) {
	s := NewBookListStore()
	five := 5
	s.SetPagination(PaginationPatch{Page: &five})

	search := "golang"
	filters, pagination := s.SetFilters(FilterPatch{Search: &search})

	assert.Equal(t, "golang", filters.Search)
	assert.Equal(t, "title", filters.SortBy, "untouched filters keep their value")
	assert.Equal(t, 1, pagination.Page, "any filter change snaps back to the first page")
}

func TestSetPaginationKeepsFilters(t *testing.T) {
	s := NewBookListStore()
	search := "golang"
	s.SetFilters(FilterPatch{Search: &search})

	three := 3
	total := 42
	pagination := s.SetPagination(PaginationPatch{Page: &three, Total: &total})

	assert.Equal(t, 3, pagination.Page)
	assert.Equal(t, 42, pagination.Total)
	assert.Equal(t, 10, pagination.Limit, "unpatched pagination fields keep their value")
	assert.Equal(t, "golang", s.Filters().Search)
}

func TestResetFilters(t *testing.T) {
	s := NewBookListStore()
	search := "golang"
	category := "cat-3"
	desc := "desc"
	s.SetFilters(FilterPatch{Search: &search, Category: &category, SortOrder: &desc})
	page := 4
	limit := 25
	total := 99
	s.SetPagination(PaginationPatch{Page: &page, Limit: &limit, Total: &total})

	filters, pagination := s.ResetFilters()

	assert.Equal(t, Filters{SortBy: "title", SortOrder: "asc"}, filters)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 25, pagination.Limit, "limit survives the reset")
	assert.Equal(t, 99, pagination.Total, "total survives the reset")
}

func TestResetFiltersIsIdempotent(t *testing.T) {
	s := NewBookListStore()

	f1, p1 := s.ResetFilters()
	f2, p2 := s.ResetFilters()

	assert.Equal(t, f1, f2)
	assert.Equal(t, p1, p2)
}

func TestSetBooksCopies(t *testing.T) {
	s := NewBookListStore()

	in := []book.Book{{ID: "book-1", Title: "One"}}
	s.SetBooks(in)
	in[0].Title = "Mutated"

	assert.Equal(t, "One", s.Books()[0].Title)
}
