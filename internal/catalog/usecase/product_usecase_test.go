package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosha2001/ecommerce/internal/catalog/domain"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*domain.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	for _, existing := range r.categories {
		if existing.Name == category.Name {
			return domain.ErrCategoryAlreadyExists
		}
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*domain.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*domain.Product, error) {
	var products []*domain.Product
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	var products []*domain.Product
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Search(_ context.Context, value string) ([]*domain.Product, error) {
	var products []*domain.Product
	for _, product := range r.products {
		if strings.Contains(strings.ToLower(product.Name), strings.ToLower(value)) {
			products = append(products, product)
		}
	}
	return products, nil
}

type fakeMedia struct {
	saved int
}

func (m *fakeMedia) Save(_ context.Context, filename, _ string, content io.Reader) (string, error) {
	io.Copy(io.Discard, content)
	m.saved++
	return "https://media.example.com/" + filename, nil
}

func setupProductUseCase(t *testing.T) (ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeMedia, uuid.UUID) {
	t.Helper()

	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeProductRepo()
	media := &fakeMedia{}

	category := &domain.Category{ID: uuid.Must(uuid.NewV7()), Name: "Electronics"}
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	return NewProductUseCase(productRepo, categoryRepo, media), productRepo, categoryRepo, media, category.ID
}

func TestCreateProduct(t *testing.T) {
	uc, repo, _, media, categoryID := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), CreateProductInput{
		CategoryID:       categoryID,
		Name:             "Keyboard",
		Description:      "Mechanical",
		PriceCents:       7999,
		ImageFilename:    "keyboard.png",
		ImageContentType: "image/png",
		Image:            strings.NewReader("png bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Equal(t, int64(7999), product.PriceCents)
	assert.Equal(t, "https://media.example.com/keyboard.png", product.ImageURL)
	assert.Equal(t, 1, media.saved)
	assert.Len(t, repo.products, 1)
}

func TestCreateProductWithoutImage(t *testing.T) {
	uc, _, _, media, categoryID := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), CreateProductInput{
		CategoryID: categoryID,
		Name:       "Mouse",
		PriceCents: 2999,
	})
	require.NoError(t, err)
	assert.Empty(t, product.ImageURL)
	assert.Zero(t, media.saved)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	uc, _, _, _, _ := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), CreateProductInput{
		CategoryID: uuid.Must(uuid.NewV7()),
		Name:       "Keyboard",
		PriceCents: 7999,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	uc, _, _, _, categoryID := setupProductUseCase(t)

	tests := []struct {
		name  string
		input CreateProductInput
	}{
		{"missing name", CreateProductInput{CategoryID: categoryID, PriceCents: 100}},
		{"zero price", CreateProductInput{CategoryID: categoryID, Name: "Keyboard"}},
		{"negative price", CreateProductInput{CategoryID: categoryID, Name: "Keyboard", PriceCents: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), tt.input)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestUpdateProductPartial(t *testing.T) {
	uc, _, _, _, categoryID := setupProductUseCase(t)

	product, err := uc.CreateProduct(context.Background(), CreateProductInput{
		CategoryID:  categoryID,
		Name:        "Keyboard",
		Description: "Mechanical",
		PriceCents:  7999,
	})
	require.NoError(t, err)

	newPrice := int64(6999)
	updated, err := uc.UpdateProduct(context.Background(), product.ID, UpdateProductInput{
		PriceCents: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6999), updated.PriceCents)
	assert.Equal(t, "Keyboard", updated.Name)
	assert.Equal(t, "Mechanical", updated.Description)
}

func TestSearchProducts(t *testing.T) {
	uc, _, _, _, categoryID := setupProductUseCase(t)

	_, err := uc.CreateProduct(context.Background(), CreateProductInput{
		CategoryID: categoryID,
		Name:       "Mechanical Keyboard",
		PriceCents: 7999,
	})
	require.NoError(t, err)

	products, err := uc.SearchProducts(context.Background(), "keyboard")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	// No match is reported as not found, not as an empty page.
	products, err = uc.SearchProducts(context.Background(), "sofa")
	assert.Nil(t, products)
	assert.ErrorIs(t, err, domain.ErrNoProductsFound)

	_, err = uc.SearchProducts(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestListProductsByCategoryEmptyIsNotFound(t *testing.T) {
	uc, _, _, _, categoryID := setupProductUseCase(t)

	products, err := uc.ListProductsByCategory(context.Background(), categoryID)
	assert.Nil(t, products)
	assert.ErrorIs(t, err, domain.ErrNoProductsFound)
}

func TestCategoryUseCaseLifecycle(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	category, err := uc.CreateCategory(ctx, " Books ")
	require.NoError(t, err)
	assert.Equal(t, "Books", category.Name)

	_, err = uc.CreateCategory(ctx, "Books")
	assert.ErrorIs(t, err, domain.ErrCategoryAlreadyExists)

	renamed, err := uc.UpdateCategory(ctx, category.ID, "Comics")
	require.NoError(t, err)
	assert.Equal(t, "Comics", renamed.Name)

	_, err = uc.CreateCategory(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, uc.DeleteCategory(ctx, category.ID))
	_, err = uc.GetCategory(ctx, category.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
