package sessions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jrsteele09/crm-gateway-admin/internal/config"
	"github.com/jrsteele09/crm-gateway-admin/users"
	"github.com/rs/zerolog/log"
)

// Store keeps a single session payload in a cookie.
// Every call receives the request/response it works on, so the store holds no per-request state.
type Store struct {
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

type Option func(*Store)

// WithClock overrides the time source, used by tests to control expiry
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(cfg config.SessionConfig, opts ...Option) *Store {
	s := &Store{
		cookieName: cfg.GetSessionCookieName(),
		ttl:        cfg.GetSessionTTL(),
		secure:     cfg.GetSecureCookies(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CookieName is the name of the single session slot
func (s *Store) CookieName() string {
	return s.cookieName
}

// Create writes a new session cookie, replacing any previous one
func (s *Store) Create(w http.ResponseWriter, user users.User, accessToken, refreshToken, tenantSlug string) (*Payload, error) {
	expiresAt := s.now().Add(s.ttl)
	p := Payload{
		User:         user,
		TenantSlug:   tenantSlug,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.UnixMilli(),
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("[Store Create] %w", err)
	}

	value, err := Encode(p)
	if err != nil {
		return nil, fmt.Errorf("[Store Create] %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return &p, nil
}

// Get returns the decoded session, or false when there is none.
// Malformed and expired cookies count as no session and are deleted on w.
func (s *Store) Get(w http.ResponseWriter, r *http.Request) (*Payload, bool) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	p, format, err := Decode(cookie.Value)
	if err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("Discarding malformed session cookie")
		s.Delete(w)
		return nil, false
	}

	if now := s.now(); !p.Valid(now) {
		log.Debug().
			Int64("user_id", p.User.ID).
			Time("expired_at", p.Expiry()).
			Msg("Discarding expired session cookie")
		s.Delete(w)
		return nil, false
	}

	if format != FormatBase64 {
		log.Debug().Stringer("format", format).Int64("user_id", p.User.ID).Msg("Read legacy session cookie")
	}
	return p, true
}

// Delete expires the session cookie. Calling it without a session is harmless.
func (s *Store) Delete(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
