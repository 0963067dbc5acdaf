// Package usecase implements the delivery address business logic.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/address/domain"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// SaveAddressInput contains the input data for saving an address. Nil fields
// keep their stored values on update; on first save they default to empty.
type SaveAddressInput struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
}

// AddressUseCase defines the interface for address business logic operations
type AddressUseCase interface {
	// SaveAddress creates the user's address, or updates the provided fields
	// of the existing one.
	SaveAddress(ctx context.Context, userID uuid.UUID, input SaveAddressInput) (*domain.Address, error)
	GetAddress(ctx context.Context, userID uuid.UUID) (*domain.Address, error)
}

// AddressRepository interface defines address repository operations
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	Update(ctx context.Context, address *domain.Address) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error)
}

// addressUseCase handles address-related business logic
type addressUseCase struct {
	addressRepo AddressRepository
}

// NewAddressUseCase creates a new AddressUseCase
func NewAddressUseCase(addressRepo AddressRepository) AddressUseCase {
	return &addressUseCase{
		addressRepo: addressRepo,
	}
}

// SaveAddress implements the upsert semantics: one address per user, partial
// updates on subsequent saves.
func (uc *addressUseCase) SaveAddress(ctx context.Context, userID uuid.UUID, input SaveAddressInput) (*domain.Address, error) {
	address, err := uc.addressRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !apperrors.Is(err, domain.ErrAddressNotFound) {
			return nil, err
		}

		address = &domain.Address{
			ID:      uuid.Must(uuid.NewV7()),
			UserID:  userID,
			Street:  deref(input.Street),
			City:    deref(input.City),
			State:   deref(input.State),
			ZipCode: deref(input.ZipCode),
			Country: deref(input.Country),
		}
		if err := uc.addressRepo.Create(ctx, address); err != nil {
			return nil, err
		}
		return address, nil
	}

	applyIfSet(&address.Street, input.Street)
	applyIfSet(&address.City, input.City)
	applyIfSet(&address.State, input.State)
	applyIfSet(&address.ZipCode, input.ZipCode)
	applyIfSet(&address.Country, input.Country)

	if err := uc.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// GetAddress retrieves the user's stored address
func (uc *addressUseCase) GetAddress(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	return uc.addressRepo.GetByUserID(ctx, userID)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func applyIfSet(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}
