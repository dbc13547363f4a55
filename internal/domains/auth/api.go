package auth

import "context"

// API is the credential-checking seam. The mock implementation verifies
// against the seeded admin account; token issuance happens in the
// service layer.
type API interface {
	Login(ctx context.Context, credentials Credentials) (*SessionUser, error)
}
