// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// PlaceOrderItemRequest is one product line of an order payload.
type PlaceOrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest represents an order placement payload. TotalCents is
// optional; when absent the total is computed from the item prices.
type PlaceOrderRequest struct {
	TotalCents int64                   `json:"total_cents"`
	Items      []PlaceOrderItemRequest `json:"items"`
}

// Validate validates the order placement request.
func (r PlaceOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Items,
			validation.Required.Error("order must contain at least one item"),
			validation.Each(validation.By(func(value interface{}) error {
				item, _ := value.(PlaceOrderItemRequest)
				return validation.ValidateStruct(&item,
					validation.Field(&item.ProductID,
						validation.Required.Error("product_id is required"),
						is.UUID.Error("product_id must be a valid uuid"),
					),
					validation.Field(&item.Quantity,
						validation.Min(1).Error("quantity must be at least 1"),
					),
				)
			})),
		),
	)
}

// UpdateItemStatusRequest represents an order item status change payload.
type UpdateItemStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates the status change request.
func (r UpdateItemStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
		),
	)
}
