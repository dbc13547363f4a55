package upload

import "bookadmin-backend/internal/shared/apierr"

var (
	ErrFileNotFound   = apierr.NotFound("File not found")
	ErrNoFileProvided = apierr.BadRequest("No file provided")
)
