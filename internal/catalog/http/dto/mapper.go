package dto

import "github.com/Santosha2001/ecommerce/internal/catalog/domain"

// ToCategoryResponse converts a domain category to its response representation.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToListCategoriesResponse converts categories to a listing response.
func ToListCategoriesResponse(categories []*domain.Category) ListCategoriesResponse {
	response := ListCategoriesResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, category := range categories {
		response.Categories = append(response.Categories, ToCategoryResponse(category))
	}
	return response
}

// ToProductResponse converts a domain product to its response representation.
func ToProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		CategoryID:  product.CategoryID.String(),
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		PriceCents:  product.PriceCents,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToListProductsResponse converts products to a listing response.
func ToListProductsResponse(products []*domain.Product) ListProductsResponse {
	response := ListProductsResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, product := range products {
		response.Products = append(response.Products, ToProductResponse(product))
	}
	return response
}
