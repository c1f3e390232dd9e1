package crmapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/crm-gateway-admin/crmapi"
	"github.com/jrsteele09/crm-gateway-admin/domus"
	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/internal/requestid"
	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/jrsteele09/crm-gateway-admin/tenants"
	"github.com/jrsteele09/crm-gateway-admin/users"
	"github.com/stretchr/testify/require"
)

type testUpstream struct {
	url string
}

func (u testUpstream) GetUpstreamBaseURL() string { return u.url }

func (testUpstream) GetUpstreamTimeout() time.Duration { return 5 * time.Second }

func newClient(t *testing.T, handler http.HandlerFunc) *crmapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return crmapi.New(testUpstream{url: srv.URL}, crmapi.WithHTTPClient(srv.Client()))
}

func session() *sessions.Payload {
	return &sessions.Payload{
		User:        users.User{ID: 7, Email: "ana@acme.test", FullName: "Ana Diaz", Role: users.RoleAdmin},
		TenantSlug:  "acme",
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestTenantURL(t *testing.T) {
	c := crmapi.New(testUpstream{url: "https://api.example.test"})
	require.Equal(t, "https://api.example.test/acme/api/accounts/users/", c.TenantURL("acme", "accounts/users/"))
	require.Equal(t, "https://api.example.test/a%2Fb/api/x/", c.TenantURL("a/b", "/x/"))
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/acme/api/accounts/login/", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, map[string]string{"email": "ana@acme.test", "password": "secret"}, body)

			writeJSON(t, w, http.StatusOK, map[string]any{
				"access":  "a",
				"refresh": "r",
				"user":    map[string]any{"id": 7, "email": "ana@acme.test", "full_name": "Ana Diaz", "role": "Admin"},
			})
		})

		res, err := c.Login(context.Background(), "acme", "ana@acme.test", "secret")
		require.NoError(t, err)
		require.Equal(t, "a", res.AccessToken)
		require.Equal(t, "r", res.RefreshToken)
		require.Equal(t, users.User{ID: 7, Email: "ana@acme.test", FullName: "Ana Diaz", Role: users.RoleAdmin}, res.User)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		message string
		target  error
	}{
		{
			name:    "detail message",
			status:  http.StatusUnauthorized,
			body:    `{"detail":"No active account found with the given credentials"}`,
			message: "No active account found with the given credentials",
			target:  errors.ErrNotAuthenticated,
		},
		{
			name:    "empty JSON uses fallback",
			status:  http.StatusNotFound,
			body:    `{}`,
			message: "Invalid slug, credentials, or server error.",
			target:  errors.ErrNotFound,
		},
		{
			name:    "non JSON body",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			message: "An unknown error occurred.",
			target:  errors.ErrUpstream,
		},
		{
			name:    "missing tokens",
			status:  http.StatusOK,
			body:    `{"access":"a","user":{"id":1}}`,
			message: "Invalid response from server.",
			target:  errors.ErrInvalidResponse,
		},
		{
			name:    "missing user",
			status:  http.StatusOK,
			body:    `{"access":"a","refresh":"r"}`,
			message: "Invalid response from server.",
			target:  errors.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			res, err := c.Login(context.Background(), "acme", "ana@acme.test", "secret")
			require.Nil(t, res)
			require.ErrorIs(t, err, errors.ErrLoginFailed)
			require.ErrorIs(t, err, tt.target)
			require.Equal(t, tt.message, crmapi.UserMessage(err))
		})
	}

	t.Run("missing slug", func(t *testing.T) {
		c := crmapi.New(testUpstream{url: "http://127.0.0.1:0"})
		_, err := c.Login(context.Background(), "", "a@b.test", "x")
		require.ErrorIs(t, err, errors.ErrMissingTenant)
	})
}

func TestUsersRepo(t *testing.T) {
	var calls []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		require.Equal(t, "req-1", r.Header.Get(requestid.Header))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/acme/api/accounts/users/":
			writeJSON(t, w, http.StatusOK, []users.User{{ID: 1, Email: "a@acme.test"}, {ID: 2, Email: "b@acme.test"}})
		case r.Method == http.MethodGet && r.URL.Path == "/acme/api/accounts/users/2/":
			writeJSON(t, w, http.StatusOK, users.User{ID: 2, Email: "b@acme.test"})
		case r.Method == http.MethodPost:
			var in users.Input
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(t, w, http.StatusCreated, users.User{ID: 3, Email: in.Email, FullName: in.FullName, Role: in.Role})
		case r.Method == http.MethodPatch:
			var raw map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			require.NotContains(t, raw, "password")
			writeJSON(t, w, http.StatusOK, users.User{ID: 2, Email: "b@acme.test", FullName: "Renamed"})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	})

	ctx := requestid.NewContext(context.Background(), "req-1")
	repo := c.Users(session())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	u, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "b@acme.test", u.Email)

	created, err := repo.Create(ctx, users.Input{FullName: "New Person", Email: "new@acme.test", Password: "pw", Role: users.RoleAgent})
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)
	require.Equal(t, users.RoleAgent, created.Role)

	updated, err := repo.Update(ctx, 2, users.Input{FullName: "Renamed", Email: "b@acme.test"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.FullName)

	require.NoError(t, repo.Delete(ctx, 2))

	require.Equal(t, []string{
		"GET /acme/api/accounts/users/",
		"GET /acme/api/accounts/users/2/",
		"POST /acme/api/accounts/users/",
		"PATCH /acme/api/accounts/users/2/",
		"DELETE /acme/api/accounts/users/2/",
	}, calls)
}

func TestUsersRepoErrors(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			writeJSON(t, w, http.StatusBadRequest, map[string]any{
				"email":     []string{"user with this email already exists."},
				"full_name": "This field may not be blank.",
			})
		case http.MethodDelete:
			w.WriteHeader(http.StatusForbidden)
		default:
			writeJSON(t, w, http.StatusInternalServerError, map[string]any{})
		}
	})
	repo := c.Users(session())

	_, err := repo.Create(context.Background(), users.Input{Email: "dup@acme.test"})
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	require.Equal(t, "user with this email already exists., This field may not be blank.", crmapi.UserMessage(err))

	_, err = repo.List(context.Background())
	require.ErrorIs(t, err, errors.ErrUpstream)
	require.Equal(t, "Failed to fetch users", crmapi.UserMessage(err))

	err = repo.Delete(context.Background(), 9)
	require.ErrorIs(t, err, errors.ErrNotAuthenticated)
	require.Equal(t, "Failed to delete user", crmapi.UserMessage(err))
}

func TestSessionRequirements(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	noToken := session()
	noToken.AccessToken = ""
	_, err := c.Users(noToken).List(context.Background())
	require.ErrorIs(t, err, errors.ErrNotAuthenticated)
	require.Equal(t, "No estás autenticado.", crmapi.UserMessage(err))

	_, err = c.Tenants(nil).List(context.Background())
	require.ErrorIs(t, err, errors.ErrNotAuthenticated)

	noSlug := session()
	noSlug.TenantSlug = ""
	_, err = c.Domus(noSlug).Get(context.Background())
	require.ErrorIs(t, err, errors.ErrMissingTenant)
	require.Equal(t, "No se pudo encontrar el slug de la organización en la sesión.", crmapi.UserMessage(err))
}

func TestTenantsRepo(t *testing.T) {
	var calls []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, []tenants.Tenant{{ID: 1, Name: "Acme", Slug: "acme", IsActive: true}})
		case http.MethodPost:
			var in tenants.Input
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(t, w, http.StatusCreated, tenants.Tenant{ID: 2, Name: in.Name, Slug: in.Slug, IsActive: in.IsActive})
		case http.MethodPatch:
			writeJSON(t, w, http.StatusOK, tenants.Tenant{ID: 2, Name: "Globex", Slug: "globex"})
		}
	})
	repo := c.Tenants(session())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "acme", list[0].Slug)

	created, err := repo.Create(context.Background(), tenants.Input{Name: "Globex", Slug: "globex", IsActive: true})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	updated, err := repo.Update(context.Background(), 2, tenants.Input{Name: "Globex", Slug: "globex"})
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	require.Equal(t, []string{
		"GET /api/orgs/organizations/",
		"POST /api/orgs/organizations/",
		"PATCH /api/orgs/organizations/2/",
	}, calls)
}

func TestDomusRepo(t *testing.T) {
	t.Run("not configured returns defaults", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/acme/api/domus/credentials/", r.URL.Path)
			writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		})

		cred, err := c.Domus(session()).Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, domus.DefaultCredential(), cred)
		require.False(t, cred.Configured())
	})

	t.Run("stored credential", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, domus.Credential{ID: 4, CRMToken: "crm", InventoryToken: "inv", APIBase: domus.DefaultAPIBase, CRMBase: domus.DefaultCRMBase, Inmobiliaria: 9, Grupo: "1"})
		})

		cred, err := c.Domus(session()).Get(context.Background())
		require.NoError(t, err)
		require.True(t, cred.Configured())
		require.Equal(t, 9, cred.Inmobiliaria)
	})

	t.Run("update", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var in domus.Input
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			if in.CRMToken == "" {
				writeJSON(t, w, http.StatusBadRequest, map[string]any{"crm_token": []string{"This field is required."}})
				return
			}
			writeJSON(t, w, http.StatusOK, domus.Credential{ID: 1, CRMToken: in.CRMToken, InventoryToken: in.InventoryToken})
		})
		repo := c.Domus(session())

		cred, err := repo.Update(context.Background(), domus.Input{CRMToken: "crm", InventoryToken: "inv"})
		require.NoError(t, err)
		require.Equal(t, "crm", cred.CRMToken)

		_, err = repo.Update(context.Background(), domus.Input{})
		require.ErrorIs(t, err, errors.ErrInvalidArgument)
		require.Equal(t, "This field is required.", crmapi.UserMessage(err))
	})

	t.Run("server error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.Domus(session()).Get(context.Background())
		require.ErrorIs(t, err, errors.ErrUpstream)
		require.Equal(t, "Failed to fetch Domus credentials", crmapi.UserMessage(err))
	})
}

func TestInvalidJSONResponse(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	})

	_, err := c.Users(session()).List(context.Background())
	require.ErrorIs(t, err, errors.ErrInvalidResponse)
	require.Equal(t, "Invalid response from server.", crmapi.UserMessage(err))
}

func TestUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := crmapi.New(testUpstream{url: base})
	_, err := c.Tenants(session()).List(context.Background())
	require.ErrorIs(t, err, errors.ErrUpstream)
	require.Equal(t, "The integrations service could not be reached. Please try again.", crmapi.UserMessage(err))
}
