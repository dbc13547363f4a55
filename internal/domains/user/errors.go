package user

import "bookadmin-backend/internal/shared/apierr"

var (
	ErrUserNotFound = apierr.NotFound("User not found")
)
