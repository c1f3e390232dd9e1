package crmapi

import (
	"context"
	"net/http"

	"github.com/jrsteele09/crm-gateway-admin/domus"
	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/sessions"
)

// Domus returns the Domus credentials repo of the session's tenant
func (c *Client) Domus(p *sessions.Payload) domus.Repo {
	return &domusAPI{client: c, session: p}
}

type domusAPI struct {
	client  *Client
	session *sessions.Payload
}

var _ domus.Repo = (*domusAPI)(nil)

func (d *domusAPI) prepare() (*http.Client, string, error) {
	hc, err := d.client.bearerClient(d.session)
	if err != nil {
		return nil, "", err
	}
	slug, err := tenantSlug(d.session)
	if err != nil {
		return nil, "", err
	}
	return hc, d.client.TenantURL(slug, "domus/credentials/"), nil
}

// Get returns the stored credential, or domus.DefaultCredential when the tenant has none yet (404)
func (d *domusAPI) Get(ctx context.Context) (domus.Credential, error) {
	hc, endpoint, err := d.prepare()
	if err != nil {
		return domus.Credential{}, err
	}
	var cred domus.Credential
	err = d.client.do(ctx, hc, "GetDomusCredentials", http.MethodGet, endpoint, nil, &cred, "Failed to fetch Domus credentials")
	if errors.Is(err, errors.ErrNotFound) {
		return domus.DefaultCredential(), nil
	}
	if err != nil {
		return domus.Credential{}, err
	}
	return cred, nil
}

// Update posts the credential; the endpoint creates or replaces
func (d *domusAPI) Update(ctx context.Context, input domus.Input) (domus.Credential, error) {
	hc, endpoint, err := d.prepare()
	if err != nil {
		return domus.Credential{}, err
	}
	var cred domus.Credential
	if err := d.client.do(ctx, hc, "UpdateDomusCredentials", http.MethodPost, endpoint, input, &cred, "Failed to update Domus credentials"); err != nil {
		return domus.Credential{}, err
	}
	return cred, nil
}
