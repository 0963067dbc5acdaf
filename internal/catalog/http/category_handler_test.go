package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosha2001/ecommerce/internal/catalog/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeCategoryUseCase struct {
	createdName string
	updatedID   uuid.UUID
	updatedName string
	deletedID   uuid.UUID

	category   *domain.Category
	categories []*domain.Category
	err        error
}

func (f *fakeCategoryUseCase) CreateCategory(_ context.Context, name string) (*domain.Category, error) {
	f.createdName = name
	return f.category, f.err
}

func (f *fakeCategoryUseCase) UpdateCategory(_ context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	f.updatedID = id
	f.updatedName = name
	return f.category, f.err
}

func (f *fakeCategoryUseCase) DeleteCategory(_ context.Context, id uuid.UUID) error {
	f.deletedID = id
	return f.err
}

func (f *fakeCategoryUseCase) GetCategory(_ context.Context, _ uuid.UUID) (*domain.Category, error) {
	return f.category, f.err
}

func (f *fakeCategoryUseCase) ListCategories(_ context.Context) ([]*domain.Category, error) {
	return f.categories, f.err
}

func setupCategoryRouter(fake *fakeCategoryUseCase) *gin.Engine {
	handler := NewCategoryHandler(fake, slog.New(slog.DiscardHandler))

	router := gin.New()
	router.POST("/categories", handler.CreateHandler)
	router.PUT("/categories/:id", handler.UpdateHandler)
	router.DELETE("/categories/:id", handler.DeleteHandler)
	router.GET("/categories/:id", handler.GetHandler)
	router.GET("/categories", handler.ListHandler)
	return router
}

func TestCategoryCreateHandler(t *testing.T) {
	fake := &fakeCategoryUseCase{category: &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: "Books",
	}}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString(`{"name":"Books"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Books", fake.createdName)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Books", response["name"])
}

func TestCategoryCreateHandlerBlankName(t *testing.T) {
	fake := &fakeCategoryUseCase{}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewBufferString(`{"name":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, fake.createdName)
}

func TestCategoryUpdateHandler(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	fake := &fakeCategoryUseCase{category: &domain.Category{ID: id, Name: "Music"}}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/categories/"+id.String(), bytes.NewBufferString(`{"name":"Music"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, fake.updatedID)
	assert.Equal(t, "Music", fake.updatedName)
}

func TestCategoryDeleteHandler(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	fake := &fakeCategoryUseCase{}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/categories/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, id, fake.deletedID)
}

func TestCategoryGetHandlerNotFound(t *testing.T) {
	fake := &fakeCategoryUseCase{err: domain.ErrCategoryNotFound}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/"+uuid.Must(uuid.NewV7()).String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryGetHandlerInvalidID(t *testing.T) {
	fake := &fakeCategoryUseCase{}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCategoryListHandler(t *testing.T) {
	fake := &fakeCategoryUseCase{categories: []*domain.Category{
		{ID: uuid.Must(uuid.NewV7()), Name: "Books"},
		{ID: uuid.Must(uuid.NewV7()), Name: "Music"},
	}}
	router := setupCategoryRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	categories, ok := response["categories"].([]any)
	require.True(t, ok)
	assert.Len(t, categories, 2)
}
