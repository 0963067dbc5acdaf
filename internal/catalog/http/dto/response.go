package dto

import "time"

// CategoryResponse is the public representation of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductResponse is the public representation of a product.
type ProductResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListCategoriesResponse wraps a category listing.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ListProductsResponse wraps a product listing.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}
