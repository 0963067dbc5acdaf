package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/errors"
)

// Product is a purchasable catalog item. PriceCents stores the unit price in
// the smallest currency unit to keep arithmetic exact.
type Product struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description string
	ImageURL    string
	PriceCents  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Domain-specific errors for product operations.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")

	// ErrNoProductsFound indicates a search or category listing matched nothing.
	ErrNoProductsFound = errors.Wrap(errors.ErrNotFound, "no products found")
)
