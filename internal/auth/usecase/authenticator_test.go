package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosha2001/ecommerce/internal/auth/domain"
	"github.com/Santosha2001/ecommerce/internal/auth/service"
	userDomain "github.com/Santosha2001/ecommerce/internal/user/domain"
)

type fakeDirectory struct {
	users map[string]*userDomain.User
	err   error
}

func (f *fakeDirectory) GetByEmail(_ context.Context, email string) (*userDomain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[email]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	return user, nil
}

func newTestCodec(t *testing.T) service.TokenCodec {
	t.Helper()
	codec, err := service.NewJWTTokenCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return codec
}

func TestAuthenticatorResolveAnonymous(t *testing.T) {
	codec := newTestCodec(t)
	auth := NewAuthenticator(codec, &fakeDirectory{})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer   "},
		{"garbage token", "Bearer not-a-real-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := auth.Resolve(context.Background(), tt.header)
			assert.NoError(t, err)
			assert.Nil(t, principal)
		})
	}
}

func TestAuthenticatorResolveValidToken(t *testing.T) {
	codec := newTestCodec(t)
	userID := uuid.Must(uuid.NewV7())
	directory := &fakeDirectory{users: map[string]*userDomain.User{
		"user@example.com": {ID: userID, Email: "user@example.com", Role: domain.RoleAdmin},
	}}
	auth := NewAuthenticator(codec, directory)

	token, err := codec.Encode(domain.NewClaims("user@example.com", time.Now()))
	require.NoError(t, err)

	principal, err := auth.Resolve(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, userID, principal.ID)
	assert.Equal(t, "user@example.com", principal.Email)
	assert.Equal(t, domain.RoleAdmin, principal.Role)
}

func TestAuthenticatorResolveCaseInsensitiveScheme(t *testing.T) {
	codec := newTestCodec(t)
	directory := &fakeDirectory{users: map[string]*userDomain.User{
		"user@example.com": {ID: uuid.Must(uuid.NewV7()), Email: "user@example.com", Role: domain.RoleUser},
	}}
	auth := NewAuthenticator(codec, directory)

	token, err := codec.Encode(domain.NewClaims("user@example.com", time.Now()))
	require.NoError(t, err)

	principal, err := auth.Resolve(context.Background(), "bearer "+token)
	require.NoError(t, err)
	assert.NotNil(t, principal)
}

func TestAuthenticatorResolveExpiredToken(t *testing.T) {
	codec := newTestCodec(t)
	directory := &fakeDirectory{users: map[string]*userDomain.User{
		"user@example.com": {ID: uuid.Must(uuid.NewV7()), Email: "user@example.com", Role: domain.RoleUser},
	}}
	auth := NewAuthenticator(codec, directory)

	expired := domain.Claims{
		Subject:   "user@example.com",
		IssuedAt:  time.Now().Add(-2 * domain.TokenTTL).Truncate(time.Second),
		ExpiresAt: time.Now().Add(-domain.TokenTTL).Truncate(time.Second),
	}
	token, err := codec.Encode(expired)
	require.NoError(t, err)

	principal, err := auth.Resolve(context.Background(), "Bearer "+token)
	assert.NoError(t, err)
	assert.Nil(t, principal)
}

func TestAuthenticatorResolveUnknownSubject(t *testing.T) {
	codec := newTestCodec(t)
	auth := NewAuthenticator(codec, &fakeDirectory{})

	token, err := codec.Encode(domain.NewClaims("deleted@example.com", time.Now()))
	require.NoError(t, err)

	principal, err := auth.Resolve(context.Background(), "Bearer "+token)
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domain.ErrPrincipalNotFound)
}

func TestAuthenticatorResolveDirectoryFailure(t *testing.T) {
	codec := newTestCodec(t)
	auth := NewAuthenticator(codec, &fakeDirectory{err: errors.New("connection refused")})

	token, err := codec.Encode(domain.NewClaims("user@example.com", time.Now()))
	require.NoError(t, err)

	principal, err := auth.Resolve(context.Background(), "Bearer "+token)
	assert.Nil(t, principal)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPrincipalNotFound)
}
