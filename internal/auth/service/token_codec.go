package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Santosha2001/ecommerce/internal/auth/domain"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// minSigningKeyBytes is the minimum accepted signing key length.
// HMAC-SHA256 keys shorter than the hash output weaken the MAC.
const minSigningKeyBytes = 32

// jwtTokenCodec implements TokenCodec using HMAC-SHA256 signed JWTs.
type jwtTokenCodec struct {
	signingKey []byte
}

// NewJWTTokenCodec creates a TokenCodec signing with the given key.
// Returns domain.ErrSigningKeyTooShort for keys under 32 bytes.
func NewJWTTokenCodec(signingKey []byte) (TokenCodec, error) {
	if len(signingKey) < minSigningKeyBytes {
		return nil, domain.ErrSigningKeyTooShort
	}
	key := make([]byte, len(signingKey))
	copy(key, signingKey)
	return &jwtTokenCodec{signingKey: key}, nil
}

// Encode signs the claims into a compact token string.
func (c *jwtTokenCodec) Encode(claims domain.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   claims.Subject,
		IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
	})

	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Decode parses and verifies a compact token string. Claims validation is
// disabled on parse: expiry is an explicit, separate check in the resolver so
// an expired-but-genuine token never gets misreported as forged.
func (c *jwtTokenCodec) Decode(tokenString string) (domain.Claims, error) {
	var registered jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(
		tokenString,
		&registered,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return domain.Claims{}, domain.ErrTokenSignatureInvalid
		}
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	if registered.Subject == "" || registered.IssuedAt == nil || registered.ExpiresAt == nil {
		return domain.Claims{}, domain.ErrTokenMalformed
	}

	return domain.Claims{
		Subject:   registered.Subject,
		IssuedAt:  registered.IssuedAt.Time.UTC(),
		ExpiresAt: registered.ExpiresAt.Time.UTC(),
	}, nil
}
