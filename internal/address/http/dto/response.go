// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/Santosha2001/ecommerce/internal/address/domain"
)

// AddressResponse is the public representation of a delivery address.
type AddressResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain address to its response representation.
func ToAddressResponse(address *domain.Address) AddressResponse {
	return AddressResponse{
		ID:        address.ID.String(),
		UserID:    address.UserID.String(),
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		ZipCode:   address.ZipCode,
		Country:   address.Country,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
}
