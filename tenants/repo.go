package tenants

import "context"

// Repo manages organizations. The organizations API is not tenant prefixed and is
// normally restricted to super admins by the backend.
type Repo interface {
	List(ctx context.Context) ([]Tenant, error)
	Create(ctx context.Context, input Input) (*Tenant, error)
	Update(ctx context.Context, id int64, input Input) (*Tenant, error)
}
