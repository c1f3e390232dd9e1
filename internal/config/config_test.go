package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/crm-gateway-admin/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, v := range []string{"PORT", "APP_NAME", "ENV", "LOG_LEVEL", "UPSTREAM_BASE_URL", "UPSTREAM_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(v, "")
	}
	c := config.New()

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "CRM Gateway Hub", c.GetAppName())
	require.Equal(t, config.DevEnv, c.GetEnv())
	require.True(t, c.IsDevelopment())
	require.Equal(t, "info", c.GetLogLevel())
	require.Equal(t, "https://integrations.lambdaanalytics.co", c.GetUpstreamBaseURL())
	require.Equal(t, 15*time.Second, c.GetUpstreamTimeout())
	require.Equal(t, "session", c.GetSessionCookieName())
	require.Equal(t, 7*24*time.Hour, c.GetSessionTTL())
	require.False(t, c.GetSecureCookies())
	require.Empty(t, c.GetAllowedOrigins())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", ":9000")
	t.Setenv("ENV", "PROD")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.test/")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.test, https://b.example.test")
	c := config.New()

	require.Equal(t, ":9000", c.GetPort())
	require.False(t, c.IsDevelopment())
	require.True(t, c.GetSecureCookies())
	require.Equal(t, "debug", c.GetLogLevel())
	require.Equal(t, "https://api.example.test", c.GetUpstreamBaseURL())
	require.Equal(t, 3*time.Second, c.GetUpstreamTimeout())

	origins := c.GetAllowedOrigins()
	require.True(t, origins.IsAllowedOrigin("https://a.example.test"))
	require.True(t, origins.IsAllowedOrigin("https://b.example.test"))
	require.False(t, origins.IsAllowedOrigin("https://c.example.test"))
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")
	require.Equal(t, 15*time.Second, config.Upstream{}.GetUpstreamTimeout())

	t.Setenv("UPSTREAM_TIMEOUT", "-1s")
	require.Equal(t, 15*time.Second, config.Upstream{}.GetUpstreamTimeout())
}
