package sessions_test

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/crm-gateway-admin/sessions"
	"github.com/stretchr/testify/require"
)

func TestPayload_Valid(t *testing.T) {
	p := testPayload()
	expiry := p.Expiry()

	require.True(t, p.Valid(expiry.Add(-time.Millisecond)))
	require.False(t, p.Valid(expiry))
	require.False(t, p.Valid(expiry.Add(time.Second)))

	p.AccessToken = ""
	require.False(t, p.Valid(expiry.Add(-time.Hour)))
}

func TestPayload_AccessTokenExpiry(t *testing.T) {
	exp := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	t.Run("jwt access token", func(t *testing.T) {
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
			"exp":     exp.Unix(),
			"user_id": 42,
		}).SignedString([]byte("upstream-secret"))
		require.NoError(t, err)

		p := testPayload()
		p.AccessToken = token
		got, ok := p.AccessTokenExpiry()
		require.True(t, ok)
		require.True(t, got.Equal(exp))
	})

	t.Run("opaque access token", func(t *testing.T) {
		_, ok := testPayload().AccessTokenExpiry()
		require.False(t, ok)
	})

	t.Run("jwt without exp", func(t *testing.T) {
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{"user_id": 42}).
			SignedString([]byte("upstream-secret"))
		require.NoError(t, err)

		p := testPayload()
		p.AccessToken = token
		_, ok := p.AccessTokenExpiry()
		require.False(t, ok)
	})
}

func TestContext(t *testing.T) {
	_, ok := sessions.FromContext(context.Background())
	require.False(t, ok)

	p := testPayload()
	got, ok := sessions.FromContext(sessions.NewContext(context.Background(), &p))
	require.True(t, ok)
	require.Equal(t, p, *got)
}
