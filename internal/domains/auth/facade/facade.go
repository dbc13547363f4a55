// Package facade adapts the simulated backend client to the auth API.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/auth"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ auth.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) Login(ctx context.Context, credentials auth.Credentials) (*auth.SessionUser, error) {
	return f.client.Login(ctx, credentials)
}
