// Package domain defines the product catalog entities: categories and products.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/errors"
)

// Category groups products for browsing.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for category operations.
var (
	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")

	// ErrCategoryAlreadyExists indicates a category with the same name already exists.
	ErrCategoryAlreadyExists = errors.Wrap(errors.ErrConflict, "category already exists")
)
