// Package http provides the HTTP authentication pipeline: identity
// resolution, access policy enforcement and the credential endpoints.
package http

import (
	"context"

	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
)

// principalKey is a context key type for storing resolved principals.
type principalKey struct{}

// WithPrincipal stores a resolved principal in the context.
// This is called by the pipeline middleware after successful resolution.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the resolved principal from the context.
// Returns (principal, true) if one is present, or (nil, false) for anonymous
// requests.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok
}
