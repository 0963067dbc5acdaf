package domain

import (
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// Domain-specific errors for authentication operations.
var (
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = apperrors.Wrap(apperrors.ErrUnauthorized, "token malformed")

	// ErrTokenSignatureInvalid indicates the token signature did not verify
	// against the signing key.
	ErrTokenSignatureInvalid = apperrors.Wrap(apperrors.ErrUnauthorized, "token signature invalid")

	// ErrTokenExpired indicates a structurally valid, correctly signed token
	// whose expiry has passed.
	ErrTokenExpired = apperrors.Wrap(apperrors.ErrUnauthorized, "token expired")

	// ErrPrincipalNotFound indicates a valid signature for a subject that no
	// longer exists in the user directory. Unlike the token errors above it is
	// surfaced to the pipeline instead of being downgraded to anonymous,
	// because it signals data inconsistency (e.g. a deleted account with an
	// outstanding token).
	ErrPrincipalNotFound = apperrors.Wrap(apperrors.ErrNotFound, "principal not found")

	// ErrSigningKeyTooShort indicates the configured signing secret is below
	// the minimum accepted length.
	ErrSigningKeyTooShort = apperrors.Wrap(apperrors.ErrInvalidInput, "signing key must be at least 32 bytes")
)
