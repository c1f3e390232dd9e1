package crmapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/jrsteele09/crm-gateway-admin/users"
)

// LoginResult is a successful login: the tokens and the account they belong to
type LoginResult struct {
	User         users.User
	AccessToken  string
	RefreshToken string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    *users.User `json:"user"`
}

// Login exchanges credentials for tokens at POST /{slug}/api/accounts/login/.
// Failures wrap errors.ErrLoginFailed; UserMessage gives the text to show.
func (c *Client) Login(ctx context.Context, slug, email, password string) (*LoginResult, error) {
	if slug == "" {
		return nil, fmt.Errorf("[crmapi Login] %w: %w", errors.ErrLoginFailed, errors.ErrMissingTenant)
	}

	var resp loginResponse
	err := c.do(ctx, c.httpClient, "Login", http.MethodPost, c.TenantURL(slug, "accounts/login/"),
		loginRequest{Email: email, Password: password}, &resp, "Invalid slug, credentials, or server error.")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && !jsonBody(apiErr) {
			apiErr.Message = "An unknown error occurred."
		}
		return nil, fmt.Errorf("[crmapi Login] %w: %w", errors.ErrLoginFailed, err)
	}

	if resp.Access == "" || resp.Refresh == "" || resp.User == nil {
		return nil, fmt.Errorf("[crmapi Login] %w: %w", errors.ErrLoginFailed, errors.ErrInvalidResponse)
	}

	return &LoginResult{
		User:         *resp.User,
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
	}, nil
}

// Users returns the user accounts of the session's tenant
func (c *Client) Users(p *sessions.Payload) users.Repo {
	return &userAPI{client: c, session: p}
}

type userAPI struct {
	client  *Client
	session *sessions.Payload
}

var _ users.Repo = (*userAPI)(nil)

func (u *userAPI) prepare(path string) (*http.Client, string, error) {
	hc, err := u.client.bearerClient(u.session)
	if err != nil {
		return nil, "", err
	}
	slug, err := tenantSlug(u.session)
	if err != nil {
		return nil, "", err
	}
	return hc, u.client.TenantURL(slug, "accounts/"+path), nil
}

func (u *userAPI) List(ctx context.Context) ([]users.User, error) {
	hc, endpoint, err := u.prepare("users/")
	if err != nil {
		return nil, err
	}
	var list []users.User
	if err := u.client.do(ctx, hc, "ListUsers", http.MethodGet, endpoint, nil, &list, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return list, nil
}

func (u *userAPI) Get(ctx context.Context, id int64) (*users.User, error) {
	hc, endpoint, err := u.prepare(fmt.Sprintf("users/%d/", id))
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := u.client.do(ctx, hc, "GetUser", http.MethodGet, endpoint, nil, &user, "Failed to fetch user details"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userAPI) Create(ctx context.Context, input users.Input) (*users.User, error) {
	hc, endpoint, err := u.prepare("users/")
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := u.client.do(ctx, hc, "CreateUser", http.MethodPost, endpoint, input, &user, "Failed to create user"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userAPI) Update(ctx context.Context, id int64, input users.Input) (*users.User, error) {
	hc, endpoint, err := u.prepare(fmt.Sprintf("users/%d/", id))
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := u.client.do(ctx, hc, "UpdateUser", http.MethodPatch, endpoint, input, &user, "Failed to update user"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userAPI) Delete(ctx context.Context, id int64) error {
	hc, endpoint, err := u.prepare(fmt.Sprintf("users/%d/", id))
	if err != nil {
		return err
	}
	return u.client.do(ctx, hc, "DeleteUser", http.MethodDelete, endpoint, nil, nil, "Failed to delete user")
}
