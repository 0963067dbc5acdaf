// Package usecase implements the authentication business logic: per-request
// identity resolution and credential-based login.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Santosha2001/ecommerce/internal/auth/domain"
	"github.com/Santosha2001/ecommerce/internal/auth/service"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	userDomain "github.com/Santosha2001/ecommerce/internal/user/domain"
)

// UserDirectory is the account lookup needed to turn a token subject into a
// live principal.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// Authenticator resolves the identity behind a request's Authorization header.
type Authenticator interface {
	// Resolve returns the principal for the header, or (nil, nil) when the
	// request is anonymous: no header, no bearer scheme, or a token that is
	// malformed, forged or expired. A verified token whose subject no longer
	// exists returns domain.ErrPrincipalNotFound; directory failures are
	// returned as-is so the caller can answer with a server error.
	Resolve(ctx context.Context, authorizationHeader string) (*domain.Principal, error)
}

const bearerPrefix = "bearer "

// tokenAuthenticator implements Authenticator on top of the token codec and
// the user directory.
type tokenAuthenticator struct {
	codec service.TokenCodec
	users UserDirectory
	now   func() time.Time
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(codec service.TokenCodec, users UserDirectory) Authenticator {
	return &tokenAuthenticator{
		codec: codec,
		users: users,
		now:   time.Now,
	}
}

// Resolve implements Authenticator.
func (a *tokenAuthenticator) Resolve(ctx context.Context, authorizationHeader string) (*domain.Principal, error) {
	token, ok := extractBearerToken(authorizationHeader)
	if !ok {
		return nil, nil
	}

	claims, err := a.codec.Decode(token)
	if err != nil {
		// Malformed or forged tokens downgrade to anonymous instead of
		// failing the request; the policy layer decides whether anonymous
		// access suffices for the route.
		return nil, nil
	}

	if claims.Expired(a.now()) {
		return nil, nil
	}

	user, err := a.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, apperrors.Wrap(err, "failed to resolve principal")
	}

	return &domain.Principal{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// extractBearerToken parses an Authorization header value. The scheme match
// is case-insensitive per RFC 7235.
func extractBearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) {
		return "", false
	}
	if !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
