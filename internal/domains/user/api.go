package user

import "context"

// API is the user resource seam. BatchDelete, Restore and ChangeRole
// are declared for the UI layer but the mock backend answers them with
// a structured not-implemented failure.
type API interface {
	List(ctx context.Context, req ListUsersRequest) (*ListUsersResult, error)
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, patch Patch) (*User, error)
	Delete(ctx context.Context, id string) (*DeleteSummary, error)

	BatchDelete(ctx context.Context, ids []string) (*BatchDeleteSummary, error)
	Restore(ctx context.Context, ids []string) (*RestoreSummary, error)
	ChangeRole(ctx context.Context, id string, role Role) (*User, error)
}
