package dto

import "time"

// OrderItemResponse is the public representation of an order item.
type OrderItemResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	UserID     string    `json:"user_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderResponse is the public representation of a placed order.
type OrderResponse struct {
	ID         string              `json:"id"`
	TotalCents int64               `json:"total_cents"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

// FilterItemsResponse is a paginated order item listing with the total count
// of matching items.
type FilterItemsResponse struct {
	Items  []OrderItemResponse `json:"items"`
	Total  int64               `json:"total"`
	Offset int                 `json:"offset"`
	Limit  int                 `json:"limit"`
}
