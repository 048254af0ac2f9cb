package principal

import (
	"context"

	"github.com/google/uuid"
)

// Principal identifies the authenticated user behind a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

type contextKey struct{}

// WithPrincipal returns a context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext extracts the principal set during identity resolution.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}
