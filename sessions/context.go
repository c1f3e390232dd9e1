package sessions

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying the decoded session
func NewContext(ctx context.Context, p *Payload) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the session stored by NewContext
func FromContext(ctx context.Context) (*Payload, bool) {
	p, ok := ctx.Value(contextKey{}).(*Payload)
	return p, ok && p != nil
}
