// Package service provides technical services for authentication operations.
//
// This package implements the signed token codec and password hashing used by
// the authentication use cases, built on industry-standard cryptographic
// primitives (HMAC-SHA256 tokens, Argon2id password hashes).
package service

import (
	"github.com/Santosha2001/ecommerce/internal/auth/domain"
)

// TokenCodec encodes claims into compact signed tokens and decodes them back.
//
// Decode only verifies structure and signature; it deliberately does not
// check expiry so callers can distinguish a malformed or forged token from a
// genuine one that has merely expired.
type TokenCodec interface {
	// Encode signs the claims and returns the compact token string.
	Encode(claims domain.Claims) (string, error)

	// Decode parses and verifies a compact token string. It returns
	// domain.ErrTokenMalformed for structurally invalid input and
	// domain.ErrTokenSignatureInvalid when the signature does not verify.
	// Expired tokens decode successfully; check Claims.Expired separately.
	Decode(token string) (domain.Claims, error)
}

// PasswordService defines password hashing and verification for user
// credentials. Implementations must use a memory-hard hashing algorithm
// (e.g., argon2) with constant-time comparison.
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Compare compares a plain text password against a stored hash.
	// Returns true if the password matches, false otherwise.
	Compare(plainPassword string, hashedPassword string) bool
}
