// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import "time"

// UserResponse is the public representation of an account. The password hash
// is never serialized.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddressResponse is the public representation of a delivery address.
type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// OrderHistoryItemResponse is one purchased item in the profile's history.
type OrderHistoryItemResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProfileResponse is the account joined with its address and order history.
type ProfileResponse struct {
	User    UserResponse               `json:"user"`
	Address *AddressResponse           `json:"address,omitempty"`
	Orders  []OrderHistoryItemResponse `json:"orders"`
}

// ListUsersResponse is a paginated user listing.
type ListUsersResponse struct {
	Users  []UserResponse `json:"users"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}
