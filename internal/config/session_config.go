package config

import "time"

type SessionConfig interface {
	GetSessionCookieName() string
	GetSessionTTL() time.Duration
	GetSecureCookies() bool
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionCookieName() string {
	return "session"
}

// GetSessionTTL is fixed; sessions are not extended or refreshed.
func (Session) GetSessionTTL() time.Duration {
	return 7 * 24 * time.Hour
}

// GetSecureCookies is true everywhere except local development, where the
// server usually runs over plain http.
func (Session) GetSecureCookies() bool {
	return !EnvVars{}.IsDevelopment()
}
