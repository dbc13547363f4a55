package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ListBooksRequest carries the filter and pagination options for the
// book list. Zero values mean "no filter".
type ListBooksRequest struct {
	Search    string `form:"search" json:"search"`
	Category  string `form:"category" json:"category"`
	SortBy    string `form:"sortBy" json:"sortBy"`
	SortOrder string `form:"sortOrder" json:"sortOrder"`
	Page      int    `form:"page" json:"page"`
	Limit     int    `form:"limit" json:"limit"`
}

// SetDefaults sets default values for pagination
func (r *ListBooksRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
}

func (r ListBooksRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SortBy,
			validation.In("title", "author", "publisher", "publishedDate"),
		),
		validation.Field(&r.SortOrder,
			validation.In("asc", "desc"),
		),
	)
}

// ListBooksResult is the paginated list payload. Total counts the
// filtered set before pagination.
type ListBooksResult struct {
	Books []Book `json:"books"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// CreateBookRequest holds the editable fields for a new book.
type CreateBookRequest struct {
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	ISBN          string        `json:"isbn"`
	Description   string        `json:"description"`
	Publisher     string        `json:"publisher"`
	PublishedDate string        `json:"publishedDate"`
	Categories    []CategoryRef `json:"categories"`
	CoverImage    string        `json:"coverImage"`
	Rating        float64       `json:"rating"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Rating,
			validation.Min(0.0), validation.Max(5.0),
		),
	)
}

// UpdateBookRequest fully replaces the editable fields (same shape as
// create; the id comes from the route).
type UpdateBookRequest = CreateBookRequest

// DeleteSummary reports a single delete.
type DeleteSummary struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deletedId"`
	Message   string `json:"message"`
}

// BatchDeleteSummary reports a batch delete.
type BatchDeleteSummary struct {
	Success      bool     `json:"success"`
	DeletedCount int      `json:"deletedCount"`
	DeletedIDs   []string `json:"deletedIds"`
	Message      string   `json:"message"`
}

// RestoreSummary reports a restore of previously deleted books.
type RestoreSummary struct {
	Success       bool   `json:"success"`
	RestoredCount int    `json:"restoredCount"`
	Message       string `json:"message"`
}

// BatchDeleteRequest / RestoreRequest carry id sets for bulk operations.
type BatchDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r BatchDeleteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDs, validation.Required.Error("ids are required")),
	)
}

type RestoreRequest = BatchDeleteRequest
