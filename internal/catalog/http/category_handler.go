// Package http provides HTTP handlers for the product catalog.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/catalog/http/dto"
	"github.com/Santosha2001/ecommerce/internal/catalog/usecase"
	"github.com/Santosha2001/ecommerce/internal/httputil"
	customValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a new category.
// POST /categories - Requires the ADMIN role.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	var req dto.CategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateHandler renames an existing category.
// PUT /categories/:id - Requires the ADMIN role.
func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteHandler removes a category.
// DELETE /categories/:id - Requires the ADMIN role.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.categoryUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetHandler retrieves a category by ID.
// GET /categories/:id - Public.
func (h *CategoryHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// ListHandler retrieves all categories.
// GET /categories - Public.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
	categories, err := h.categoryUseCase.ListCategories(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}
