// Package domain defines the delivery address entity.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/errors"
)

// Address is a user's delivery address. Each user has at most one; saving an
// address for a user who already has one updates it in place.
type Address struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrAddressNotFound indicates the user has no stored address.
var ErrAddressNotFound = errors.Wrap(errors.ErrNotFound, "address not found")
