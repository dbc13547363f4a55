package auth

import "bookadmin-backend/internal/shared/apierr"

var (
	ErrInvalidCredentials = apierr.Unauthorized("Invalid email or password")
)
