// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	addressDomain "github.com/Santosha2001/ecommerce/internal/address/domain"
	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
	"github.com/Santosha2001/ecommerce/internal/auth/service"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	orderDomain "github.com/Santosha2001/ecommerce/internal/order/domain"
	"github.com/Santosha2001/ecommerce/internal/user/domain"
	appValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// RegisterUserInput contains the input data for user registration.
// Role opts into an administrative account when it equals "admin"
// (case-insensitive); anything else yields a regular user.
type RegisterUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

// Profile is a user's account data joined with their delivery address and
// order history. Address is nil when the user has not stored one.
type Profile struct {
	User    *domain.User
	Address *addressDomain.Address
	Orders  []*orderDomain.OrderItem
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
}

// AddressRepository defines the address lookup needed for profiles
type AddressRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*addressDomain.Address, error)
}

// OrderHistoryRepository defines the order history lookup needed for profiles
type OrderHistoryRepository interface {
	ListItemsByUserID(ctx context.Context, userID uuid.UUID) ([]*orderDomain.OrderItem, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo        UserRepository
	addressRepo     AddressRepository
	orderRepo       OrderHistoryRepository
	passwordService service.PasswordService
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo UserRepository,
	addressRepo AddressRepository,
	orderRepo OrderHistoryRepository,
	passwordService service.PasswordService,
) UseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		addressRepo:     addressRepo,
		orderRepo:       orderRepo,
		passwordService: passwordService,
	}
}

// validateRegisterUserInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128).Error("password must be between 6 and 128 characters"),
		),
		validation.Field(&input.PhoneNumber,
			validation.Length(0, 32).Error("phone number must be at most 32 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// RegisterUser registers a new account. The password is hashed before
// storage and the role defaults to USER unless explicitly opted into ADMIN.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(strings.ToLower(input.Email)),
		Password:    hashedPassword,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Role:        authDomain.ParseRole(input.Role),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (uc *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

// ListUsers retrieves users with pagination
func (uc *UserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// GetProfile retrieves a user's account data along with their stored address
// and full order history. A missing address is not an error.
func (uc *UserUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	address, err := uc.addressRepo.GetByUserID(ctx, userID)
	if err != nil && !apperrors.Is(err, addressDomain.ErrAddressNotFound) {
		return nil, err
	}

	orders, err := uc.orderRepo.ListItemsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:    user,
		Address: address,
		Orders:  orders,
	}, nil
}
