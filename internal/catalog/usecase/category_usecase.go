// Package usecase implements the catalog business logic for categories and products.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/catalog/domain"
	appValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// CategoryUseCase defines the interface for category business logic operations
type CategoryUseCase interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

// CategoryRepository interface defines category repository operations
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// categoryUseCase handles category-related business logic
type categoryUseCase struct {
	categoryRepo CategoryRepository
}

// NewCategoryUseCase creates a new CategoryUseCase
func NewCategoryUseCase(categoryRepo CategoryRepository) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// validateCategoryName validates a category name
func validateCategoryName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error("name is required"),
		appValidation.NotBlank,
		validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
	)
	return appValidation.WrapValidationError(err)
}

// CreateCategory creates a new category
func (uc *categoryUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: strings.TrimSpace(name),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory renames an existing category
func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(name)
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return uc.categoryRepo.Delete(ctx, id)
}

// GetCategory retrieves a category by ID
func (uc *categoryUseCase) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// ListCategories retrieves all categories
func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx)
}
