// Package domain defines the order entities and item lifecycle states.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/errors"
)

// OrderItemStatus is the fulfillment state of a single order item.
type OrderItemStatus string

// Supported order item statuses. Items start as StatusPending.
const (
	StatusPending   OrderItemStatus = "PENDING"
	StatusConfirmed OrderItemStatus = "CONFIRMED"
	StatusShipped   OrderItemStatus = "SHIPPED"
	StatusDelivered OrderItemStatus = "DELIVERED"
	StatusCancelled OrderItemStatus = "CANCELLED"
	StatusReturned  OrderItemStatus = "RETURNED"
)

// ParseOrderItemStatus maps a status string to an OrderItemStatus,
// case-insensitively. Returns ErrInvalidStatus for unknown values.
func ParseOrderItemStatus(value string) (OrderItemStatus, error) {
	switch OrderItemStatus(strings.ToUpper(value)) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusShipped:
		return StatusShipped, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusReturned:
		return StatusReturned, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Order is a customer purchase containing one or more items.
// TotalCents is either the client-declared total (when positive) or the sum
// of the item prices.
type Order struct {
	ID         uuid.UUID
	TotalCents int64
	CreatedAt  time.Time
	Items      []*OrderItem
}

// OrderItem is a single product line within an order. PriceCents is the
// product's unit price at purchase time multiplied by Quantity.
type OrderItem struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	UserID     uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	PriceCents int64
	Status     OrderItemStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ItemFilter selects order items for the back-office listing. Zero values
// mean the dimension is not filtered: an empty Status matches all statuses,
// a nil time bound is open-ended and a Nil ItemID matches any item.
type ItemFilter struct {
	Status    OrderItemStatus
	StartDate *time.Time
	EndDate   *time.Time
	ItemID    uuid.UUID
}

// Domain-specific errors for order operations.
var (
	// ErrOrderItemNotFound indicates the requested order item does not exist.
	ErrOrderItemNotFound = errors.Wrap(errors.ErrNotFound, "order item not found")

	// ErrInvalidStatus indicates an unrecognized order item status value.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid order item status")
)
