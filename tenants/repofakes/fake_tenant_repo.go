package tenantrepofakes

import (
	"context"
	"sort"
	"sync"

	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/tenants"
)

var _ tenants.Repo = (*FakeTenantRepo)(nil)

type FakeTenantRepo struct {
	tenants map[int64]tenants.Tenant
	nextID  int64
	lock    sync.RWMutex
}

func NewFakeTenantRepo(seed ...tenants.Tenant) *FakeTenantRepo {
	tr := &FakeTenantRepo{
		tenants: make(map[int64]tenants.Tenant),
		nextID:  1,
	}
	for _, t := range seed {
		tr.tenants[t.ID] = t
		if t.ID >= tr.nextID {
			tr.nextID = t.ID + 1
		}
	}
	return tr
}

func (tr *FakeTenantRepo) List(_ context.Context) ([]tenants.Tenant, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	tenantList := make([]tenants.Tenant, 0, len(tr.tenants))
	for _, t := range tr.tenants {
		tenantList = append(tenantList, t)
	}
	sort.Slice(tenantList, func(i, j int) bool {
		return tenantList[i].ID < tenantList[j].ID
	})
	return tenantList, nil
}

func (tr *FakeTenantRepo) Create(_ context.Context, input tenants.Input) (*tenants.Tenant, error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	for _, t := range tr.tenants {
		if t.Slug == input.Slug {
			return nil, errors.Wrapf(errors.ErrInvalidArgument, "slug %q already exists", input.Slug)
		}
	}
	t := tenants.Tenant{
		ID:       tr.nextID,
		Name:     input.Name,
		Slug:     input.Slug,
		IsActive: input.IsActive,
	}
	tr.nextID++
	tr.tenants[t.ID] = t
	return &t, nil
}

func (tr *FakeTenantRepo) Update(_ context.Context, id int64, input tenants.Input) (*tenants.Tenant, error) {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	t, ok := tr.tenants[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	t.Name = input.Name
	t.Slug = input.Slug
	t.IsActive = input.IsActive
	tr.tenants[id] = t
	return &t, nil
}
