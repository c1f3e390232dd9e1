package users

import "context"

// Repo is the per-session view of the tenant's user accounts
type Repo interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, input Input) (*User, error)
	Update(ctx context.Context, id int64, input Input) (*User, error)
	Delete(ctx context.Context, id int64) error
}
