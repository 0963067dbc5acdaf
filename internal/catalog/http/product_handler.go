package http

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Santosha2001/ecommerce/internal/catalog/http/dto"
	"github.com/Santosha2001/ecommerce/internal/catalog/usecase"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/httputil"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productUseCase usecase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// openFormImage opens the optional image file of a multipart form. A missing
// file is not an error.
func openFormImage(c *gin.Context) (*multipart.FileHeader, multipart.File, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid image upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to open image upload")
	}
	return header, file, nil
}

// CreateHandler creates a new product from a multipart form.
// POST /products - Requires the ADMIN role.
// Form fields: category_id, name, description, price_cents and an optional
// image file.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	categoryID, err := uuid.Parse(c.PostForm("category_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "category_id must be a valid uuid"), h.logger)
		return
	}

	priceCents, err := strconv.ParseInt(c.PostForm("price_cents"), 10, 64)
	if err != nil {
		httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "price_cents must be an integer"), h.logger)
		return
	}

	header, file, err := openFormImage(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if file != nil {
		defer file.Close()
	}

	input := usecase.CreateProductInput{
		CategoryID:  categoryID,
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		PriceCents:  priceCents,
	}
	if header != nil {
		input.ImageFilename = header.Filename
		input.ImageContentType = header.Header.Get("Content-Type")
		input.Image = file
	}

	product, err := h.productUseCase.CreateProduct(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// UpdateHandler applies the provided multipart form fields to a product.
// PUT /products/:id - Requires the ADMIN role.
// Absent fields keep their stored values.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var input usecase.UpdateProductInput

	if value, ok := c.GetPostForm("category_id"); ok {
		categoryID, err := uuid.Parse(value)
		if err != nil {
			httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "category_id must be a valid uuid"), h.logger)
			return
		}
		input.CategoryID = &categoryID
	}
	if value, ok := c.GetPostForm("name"); ok {
		input.Name = &value
	}
	if value, ok := c.GetPostForm("description"); ok {
		input.Description = &value
	}
	if value, ok := c.GetPostForm("price_cents"); ok {
		priceCents, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "price_cents must be an integer"), h.logger)
			return
		}
		input.PriceCents = &priceCents
	}

	header, file, err := openFormImage(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if file != nil {
		defer file.Close()
		input.ImageFilename = header.Filename
		input.ImageContentType = header.Header.Get("Content-Type")
		input.Image = file
	}

	product, err := h.productUseCase.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteHandler removes a product.
// DELETE /products/:id - Requires the ADMIN role.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.productUseCase.DeleteProduct(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetHandler retrieves a product by ID.
// GET /products/:id - Public.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// ListHandler retrieves products with pagination support.
// GET /products?offset=0&limit=50 - Public.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.ListProducts(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// ListByCategoryHandler retrieves the products of a category.
// GET /products/category/:id - Public.
func (h *ProductHandler) ListByCategoryHandler(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.ListProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// SearchHandler retrieves products matching the search value.
// GET /products/search?value=shoe - Public.
func (h *ProductHandler) SearchHandler(c *gin.Context) {
	products, err := h.productUseCase.SearchProducts(c.Request.Context(), c.Query("value"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}
