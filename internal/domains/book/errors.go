package book

import "bookadmin-backend/internal/shared/apierr"

// Structured failures raised for this resource.
var (
	ErrBookNotFound = apierr.NotFound("Book not found")
)
