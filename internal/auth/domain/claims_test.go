package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClaims(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 30, 45, 987654321, time.UTC)
	claims := NewClaims("user@example.com", issuedAt)

	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, issuedAt.Truncate(time.Second), claims.IssuedAt)
	assert.Equal(t, claims.IssuedAt.Add(TokenTTL), claims.ExpiresAt)
}

func TestClaimsExpired(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claims := NewClaims("user@example.com", issuedAt)

	assert.False(t, claims.Expired(issuedAt))
	assert.False(t, claims.Expired(claims.ExpiresAt.Add(-time.Second)))
	assert.True(t, claims.Expired(claims.ExpiresAt))
	assert.True(t, claims.Expired(claims.ExpiresAt.Add(time.Hour)))
}
