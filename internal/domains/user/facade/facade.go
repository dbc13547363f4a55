// Package facade adapts the simulated backend client to the user
// resource API, including the hooks the backend declines.
package facade

import (
	"context"

	"bookadmin-backend/internal/domains/user"
	"bookadmin-backend/internal/mockapi"
)

type Facade struct {
	client *mockapi.Client
}

var _ user.API = (*Facade)(nil)

func New(client *mockapi.Client) *Facade {
	return &Facade{client: client}
}

func (f *Facade) List(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResult, error) {
	return f.client.ListUsers(ctx, req)
}

func (f *Facade) Get(ctx context.Context, id string) (*user.User, error) {
	return f.client.GetUser(ctx, id)
}

func (f *Facade) Update(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	return f.client.UpdateUser(ctx, id, patch)
}

func (f *Facade) Delete(ctx context.Context, id string) (*user.DeleteSummary, error) {
	return f.client.DeleteUser(ctx, id)
}

func (f *Facade) BatchDelete(ctx context.Context, ids []string) (*user.BatchDeleteSummary, error) {
	return f.client.BatchDeleteUsers(ctx, ids)
}

func (f *Facade) Restore(ctx context.Context, ids []string) (*user.RestoreSummary, error) {
	return f.client.RestoreUsers(ctx, ids)
}

func (f *Facade) ChangeRole(ctx context.Context, id string, role user.Role) (*user.User, error) {
	return f.client.ChangeUserRole(ctx, id, role)
}
