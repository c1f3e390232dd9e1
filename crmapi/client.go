package crmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jrsteele09/crm-gateway-admin/internal/config"
	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/internal/requestid"
	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const maxResponseBytes = 1 << 20

// Client talks to the CRM integrations REST API.
// Calls on behalf of a user go through the session scoped repos returned by Users, Tenants and Domus.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client, e.g. with an httptest server client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(cfg config.UpstreamConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.GetUpstreamBaseURL(),
		httpClient: &http.Client{Timeout: cfg.GetUpstreamTimeout()},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API host the client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TenantURL builds {base}/{slug}/api/{path}
func (c *Client) TenantURL(slug, path string) string {
	return fmt.Sprintf("%s/%s/api/%s", c.baseURL, url.PathEscape(slug), strings.TrimPrefix(path, "/"))
}

// bearerClient wraps the base transport so every request carries the session's access token
func (c *Client) bearerClient(p *sessions.Payload) (*http.Client, error) {
	if p == nil || p.AccessToken == "" {
		return nil, errors.ErrNotAuthenticated
	}
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.AccessToken, TokenType: "Bearer"}),
			Base:   base,
		},
		Timeout: c.httpClient.Timeout,
	}, nil
}

// tenantSlug returns the session's tenant or ErrMissingTenant
func tenantSlug(p *sessions.Payload) (string, error) {
	if p == nil || p.TenantSlug == "" {
		return "", errors.ErrMissingTenant
	}
	return p.TenantSlug, nil
}

// do sends a JSON request and decodes a JSON response into out (when out is non nil).
// Non 2xx responses are returned as *APIError carrying the upstream message or fallback.
func (c *Client) do(ctx context.Context, hc *http.Client, op, method, endpoint string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("[crmapi %s] marshal request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("[crmapi %s] build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Str("method", method).Str("url", endpoint).Msg("Upstream request failed")
		return fmt.Errorf("[crmapi %s] %w: %w", op, errors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("[crmapi %s] read response: %w", op, err)
	}

	log.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestid.FromContext(ctx)).
		Msg("Upstream call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(op, resp.StatusCode, data, fallback)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("[crmapi %s] %w: %w", op, errors.ErrInvalidResponse, err)
	}
	return nil
}
