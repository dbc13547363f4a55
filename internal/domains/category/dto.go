package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ListCategoriesRequest carries pagination for the category list.
type ListCategoriesRequest struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

func (r *ListCategoriesRequest) SetDefaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

// ListCategoriesResult is the paginated list payload.
type ListCategoriesResult struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}

// SaveCategoryRequest holds the editable fields for create and update.
type SaveCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r SaveCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500),
		),
	)
}

// DeleteSummary reports a category delete.
type DeleteSummary struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deletedId"`
	Message   string `json:"message"`
}
