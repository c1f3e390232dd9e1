package sessions

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/crm-gateway-admin/users"
)

// Payload is the signed-in session persisted in the session cookie.
// The tokens are issued by the integrations API and are opaque to this server.
type Payload struct {
	User         users.User `json:"user"`
	TenantSlug   string     `json:"tenantSlug"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	ExpiresAt    int64      `json:"expiresAt"` // epoch milliseconds
}

// Expiry returns ExpiresAt as a time
func (p Payload) Expiry() time.Time {
	return time.UnixMilli(p.ExpiresAt)
}

// Valid reports whether the payload is complete and now is strictly before its expiry
func (p Payload) Valid(now time.Time) bool {
	return p.validate() == nil && now.UnixMilli() < p.ExpiresAt
}

func (p Payload) validate() error {
	switch {
	case p.User.ID == 0:
		return fmt.Errorf("missing user id: %w", ErrMalformed)
	case p.AccessToken == "":
		return fmt.Errorf("missing access token: %w", ErrMalformed)
	case p.ExpiresAt == 0:
		return fmt.Errorf("missing expiry: %w", ErrMalformed)
	}
	return nil
}

// AccessTokenExpiry reads the exp claim of the access token when it is a JWT.
// The signature is not checked, the value is informational only.
func (p Payload) AccessTokenExpiry() (time.Time, bool) {
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(p.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
