package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is propagated from incoming requests and forwarded to the integrations API
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh request id
func New() string {
	return uuid.NewString()
}

// FromHeaderOrNew keeps a caller supplied id when it is a UUID and mints one otherwise
func FromHeaderOrNew(value string) string {
	if id, err := uuid.Parse(value); err == nil {
		return id.String()
	}
	return New()
}

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
