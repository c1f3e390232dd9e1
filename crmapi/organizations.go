package crmapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/jrsteele09/crm-gateway-admin/tenants"
)

// Tenants returns the organizations repo. Organizations live under {base}/api/orgs/
// without a tenant prefix, so only the access token is taken from the session.
func (c *Client) Tenants(p *sessions.Payload) tenants.Repo {
	return &organizationAPI{client: c, session: p}
}

type organizationAPI struct {
	client  *Client
	session *sessions.Payload
}

var _ tenants.Repo = (*organizationAPI)(nil)

func (o *organizationAPI) url(path string) string {
	return fmt.Sprintf("%s/api/orgs/organizations/%s", o.client.baseURL, path)
}

func (o *organizationAPI) List(ctx context.Context) ([]tenants.Tenant, error) {
	hc, err := o.client.bearerClient(o.session)
	if err != nil {
		return nil, err
	}
	var list []tenants.Tenant
	if err := o.client.do(ctx, hc, "ListOrganizations", http.MethodGet, o.url(""), nil, &list, "Failed to fetch organizations"); err != nil {
		return nil, err
	}
	return list, nil
}

func (o *organizationAPI) Create(ctx context.Context, input tenants.Input) (*tenants.Tenant, error) {
	hc, err := o.client.bearerClient(o.session)
	if err != nil {
		return nil, err
	}
	var t tenants.Tenant
	if err := o.client.do(ctx, hc, "CreateOrganization", http.MethodPost, o.url(""), input, &t, "Failed to create organization"); err != nil {
		return nil, err
	}
	return &t, nil
}

func (o *organizationAPI) Update(ctx context.Context, id int64, input tenants.Input) (*tenants.Tenant, error) {
	hc, err := o.client.bearerClient(o.session)
	if err != nil {
		return nil, err
	}
	var t tenants.Tenant
	if err := o.client.do(ctx, hc, "UpdateOrganization", http.MethodPatch, o.url(fmt.Sprintf("%d/", id)), input, &t, "Failed to update organization"); err != nil {
		return nil, err
	}
	return &t, nil
}
