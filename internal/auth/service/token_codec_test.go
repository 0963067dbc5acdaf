package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosha2001/ecommerce/internal/auth/domain"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func newTestCodec(t *testing.T) TokenCodec {
	t.Helper()
	codec, err := NewJWTTokenCodec(testSigningKey)
	require.NoError(t, err)
	return codec
}

func TestNewJWTTokenCodecRejectsShortKey(t *testing.T) {
	_, err := NewJWTTokenCodec([]byte("too-short"))
	assert.ErrorIs(t, err, domain.ErrSigningKeyTooShort)
}

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	issuedAt := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	claims := domain.NewClaims("user@example.com", issuedAt)

	token, err := codec.Encode(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, claims.Subject, decoded.Subject)
	assert.WithinDuration(t, claims.IssuedAt, decoded.IssuedAt, 0)
	assert.WithinDuration(t, claims.ExpiresAt, decoded.ExpiresAt, 0)
}

func TestTokenCodecExpiredTokenStillDecodes(t *testing.T) {
	codec := newTestCodec(t)

	// Issued over a year ago, so well past the 180-day lifetime.
	issuedAt := time.Now().Add(-366 * 24 * time.Hour)
	claims := domain.NewClaims("user@example.com", issuedAt)

	token, err := codec.Encode(claims)
	require.NoError(t, err)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", decoded.Subject)
	assert.True(t, decoded.Expired(time.Now()))
}

func TestTokenCodecTamperedSignature(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Encode(domain.NewClaims("user@example.com", time.Now()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one character in the middle of the signature segment.
	sig := []byte(parts[2])
	mid := len(sig) / 2
	if sig[mid] == 'A' {
		sig[mid] = 'B'
	} else {
		sig[mid] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, domain.ErrTokenSignatureInvalid)
}

func TestTokenCodecWrongKey(t *testing.T) {
	codec := newTestCodec(t)
	otherCodec, err := NewJWTTokenCodec([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	token, err := codec.Encode(domain.NewClaims("user@example.com", time.Now()))
	require.NoError(t, err)

	_, err = otherCodec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenSignatureInvalid)
}

func TestTokenCodecMalformedToken(t *testing.T) {
	codec := newTestCodec(t)

	tests := []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
		"!!!.###.$$$",
	}

	for _, token := range tests {
		_, err := codec.Decode(token)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed, "token %q", token)
	}
}

func TestTokenCodecRejectsMissingClaims(t *testing.T) {
	codec := newTestCodec(t)

	// A token with an empty subject is structurally valid JWT but not a
	// usable authentication token.
	token, err := codec.Encode(domain.Claims{})
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenMalformed)
}
