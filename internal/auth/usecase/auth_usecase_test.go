package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosha2001/ecommerce/internal/auth/domain"
	"github.com/Santosha2001/ecommerce/internal/auth/service"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	userDomain "github.com/Santosha2001/ecommerce/internal/user/domain"
)

func setupAuthUseCase(t *testing.T) (AuthUseCase, service.TokenCodec, *fakeDirectory) {
	t.Helper()

	codec := newTestCodec(t)
	passwords, err := service.NewPasswordService()
	require.NoError(t, err)

	hashed, err := passwords.Hash("secret-password")
	require.NoError(t, err)

	directory := &fakeDirectory{users: map[string]*userDomain.User{
		"user@example.com": {
			ID:       uuid.Must(uuid.NewV7()),
			Email:    "user@example.com",
			Password: hashed,
			Role:     domain.RoleUser,
		},
	}}

	return NewAuthUseCase(directory, codec, passwords, nil), codec, directory
}

func TestAuthUseCaseLogin(t *testing.T) {
	uc, codec, _ := setupAuthUseCase(t)

	output, err := uc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, "6 months", output.ExpiresIn)
	assert.Equal(t, domain.RoleUser, output.Role)

	// The issued token must identify the account by email.
	claims, err := codec.Decode(output.Token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, claims.IssuedAt.Add(domain.TokenTTL), claims.ExpiresAt)
}

func TestAuthUseCaseLoginNormalizesEmail(t *testing.T) {
	uc, _, _ := setupAuthUseCase(t)

	output, err := uc.Login(context.Background(), LoginInput{
		Email:    "  USER@example.com ",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
}

func TestAuthUseCaseLoginWrongPassword(t *testing.T) {
	uc, _, _ := setupAuthUseCase(t)

	output, err := uc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthUseCaseLoginUnknownEmail(t *testing.T) {
	uc, _, _ := setupAuthUseCase(t)

	output, err := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAuthUseCaseLoginValidation(t *testing.T) {
	uc, _, _ := setupAuthUseCase(t)

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"missing email", LoginInput{Password: "secret-password"}},
		{"invalid email", LoginInput{Email: "not-an-email", Password: "secret-password"}},
		{"missing password", LoginInput{Email: "user@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Login(context.Background(), tt.input)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}
