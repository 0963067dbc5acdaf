package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/Santosha2001/ecommerce/internal/auth/domain"
	"github.com/Santosha2001/ecommerce/internal/auth/service"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/metrics"
	appValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// tokenValidity is the human-readable token lifetime advertised to clients.
// It matches domain.TokenTTL.
const tokenValidity = "6 months"

// LoginInput contains the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token     string
	ExpiresIn string
	Role      domain.Role
}

// AuthUseCase defines the interface for credential-based authentication.
type AuthUseCase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}

// authUseCase handles login: credential verification and token issuance.
type authUseCase struct {
	users           UserDirectory
	codec           service.TokenCodec
	passwords       service.PasswordService
	businessMetrics *metrics.BusinessMetrics
	now             func() time.Time
}

// NewAuthUseCase creates a new AuthUseCase. businessMetrics may be nil.
func NewAuthUseCase(
	users UserDirectory,
	codec service.TokenCodec,
	passwords service.PasswordService,
	businessMetrics *metrics.BusinessMetrics,
) AuthUseCase {
	return &authUseCase{
		users:           users,
		codec:           codec,
		passwords:       passwords,
		businessMetrics: businessMetrics,
		now:             time.Now,
	}
}

// validateLoginInput validates the login input using jellydator/validation
func (uc *authUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login verifies the credentials and issues a signed token. An unknown email
// surfaces as not found; a wrong password surfaces as invalid credentials and
// never leaks a token.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := uc.validateLoginInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		uc.businessMetrics.RecordLogin(ctx, "failure")
		return nil, err
	}

	if !uc.passwords.Compare(input.Password, user.Password) {
		uc.businessMetrics.RecordLogin(ctx, "failure")
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, "password does not match")
	}

	claims := domain.NewClaims(user.Email, uc.now())
	token, err := uc.codec.Encode(claims)
	if err != nil {
		uc.businessMetrics.RecordLogin(ctx, "failure")
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	uc.businessMetrics.RecordLogin(ctx, "success")

	return &LoginOutput{
		Token:     token,
		ExpiresIn: tokenValidity,
		Role:      user.Role,
	}, nil
}
