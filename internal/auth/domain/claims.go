package domain

import "time"

// TokenTTL is the fixed token lifetime applied at issuance:
// 180 days, the "6 months" validity advertised by the login response.
// Expiry is compared against wall-clock time with no skew tolerance.
const TokenTTL = 180 * 24 * time.Hour

// Claims is the signed content of an authentication token.
type Claims struct {
	// Subject is the principal identifier (the user's email).
	Subject string
	// IssuedAt is the issuance time, truncated to second precision.
	IssuedAt time.Time
	// ExpiresAt is always IssuedAt + TokenTTL.
	ExpiresAt time.Time
}

// NewClaims builds claims for a subject issued at the given time.
// Times are truncated to seconds so encoded tokens round-trip exactly.
func NewClaims(subject string, issuedAt time.Time) Claims {
	issuedAt = issuedAt.Truncate(time.Second)
	return Claims{
		Subject:   subject,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(TokenTTL),
	}
}

// Expired reports whether the claims are expired at the given instant.
func (c Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
