package category

import "bookadmin-backend/internal/shared/apierr"

var (
	ErrCategoryNotFound = apierr.NotFound("Category not found")
)
