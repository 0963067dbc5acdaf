package usecase

import (
	"context"
	"io"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/catalog/domain"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	appValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// CreateProductInput contains the input data for creating a product.
// Image is optional; when set, the file is stored and its public URL recorded
// on the product.
type CreateProductInput struct {
	CategoryID       uuid.UUID
	Name             string
	Description      string
	PriceCents       int64
	ImageFilename    string
	ImageContentType string
	Image            io.Reader
}

// UpdateProductInput contains the input data for updating a product.
// Nil fields keep their stored values; a new image replaces the stored URL.
type UpdateProductInput struct {
	CategoryID       *uuid.UUID
	Name             *string
	Description      *string
	PriceCents       *int64
	ImageFilename    string
	ImageContentType string
	Image            io.Reader
}

// ProductUseCase defines the interface for product business logic operations
type ProductUseCase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error)
	SearchProducts(ctx context.Context, value string) ([]*domain.Product, error)
}

// ProductRepository interface defines product repository operations
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error)
	Search(ctx context.Context, value string) ([]*domain.Product, error)
}

// MediaStorage stores uploaded product images and returns their public URLs.
type MediaStorage interface {
	Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}

// productUseCase handles product-related business logic
type productUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	media        MediaStorage
}

// NewProductUseCase creates a new ProductUseCase
func NewProductUseCase(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	media MediaStorage,
) ProductUseCase {
	return &productUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		media:        media,
	}
}

// validateCreateProductInput validates the product creation input
func validateCreateProductInput(input CreateProductInput) error {
	err := validation.Errors{
		"name": validation.Validate(input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		"description": validation.Validate(input.Description,
			validation.Length(0, 2000).Error("description must be at most 2000 characters"),
		),
		"price_cents": validation.Validate(input.PriceCents,
			validation.Min(int64(1)).Error("price must be positive"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// CreateProduct creates a new product in an existing category, storing the
// uploaded image first so the product row always references a live URL.
func (uc *productUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := validateCreateProductInput(input); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	var imageURL string
	if input.Image != nil {
		url, err := uc.media.Save(ctx, input.ImageFilename, input.ImageContentType, input.Image)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to store product image")
		}
		imageURL = url
	}

	product := &domain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    imageURL,
		PriceCents:  input.PriceCents,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies the provided fields to an existing product
func (uc *productUseCase) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		if err := validation.Validate(*input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		); err != nil {
			return nil, appValidation.WrapValidationError(err)
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.PriceCents != nil {
		if *input.PriceCents <= 0 {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "price must be positive")
		}
		product.PriceCents = *input.PriceCents
	}
	if input.Image != nil {
		url, err := uc.media.Save(ctx, input.ImageFilename, input.ImageContentType, input.Image)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to store product image")
		}
		product.ImageURL = url
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product
func (uc *productUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return uc.productRepo.Delete(ctx, id)
}

// GetProduct retrieves a product by ID
func (uc *productUseCase) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts retrieves products with pagination
func (uc *productUseCase) ListProducts(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, offset, limit)
}

// ListProductsByCategory retrieves the products of a category. An empty
// result is reported as not found.
func (uc *productUseCase) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	products, err := uc.productRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoProductsFound
	}
	return products, nil
}

// SearchProducts retrieves products matching the search value by name or
// description. An empty result is reported as not found.
func (uc *productUseCase) SearchProducts(ctx context.Context, value string) ([]*domain.Product, error) {
	if strings.TrimSpace(value) == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "search value is required")
	}

	products, err := uc.productRepo.Search(ctx, strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNoProductsFound
	}
	return products, nil
}
