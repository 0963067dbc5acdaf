// Package http provides HTTP handlers for order placement and back-office
// item management.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/Santosha2001/ecommerce/internal/auth/http"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/httputil"
	"github.com/Santosha2001/ecommerce/internal/order/domain"
	"github.com/Santosha2001/ecommerce/internal/order/http/dto"
	"github.com/Santosha2001/ecommerce/internal/order/usecase"
	customValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// filterDateLayout is the accepted format for startDate and endDate query
// parameters.
const filterDateLayout = "2006-01-02"

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	logger       *slog.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderUseCase usecase.OrderUseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// PlaceHandler places an order for the calling account.
// POST /orders - Requires an authenticated principal.
func (h *OrderHandler) PlaceHandler(c *gin.Context) {
	var req dto.PlaceOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := usecase.PlaceOrderInput{
		TotalCents: req.TotalCents,
		Items:      make([]usecase.PlaceOrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			httputil.HandleValidationErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, "product_id must be a valid uuid"), h.logger)
			return
		}
		input.Items = append(input.Items, usecase.PlaceOrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	principal, _ := authHTTP.GetPrincipal(c.Request.Context())

	order, err := h.orderUseCase.PlaceOrder(c.Request.Context(), principal, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// UpdateItemStatusHandler changes the fulfillment status of an order item.
// PUT /orders/items/:id/status - Requires the ADMIN role.
func (h *OrderHandler) UpdateItemStatusHandler(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	item, err := h.orderUseCase.UpdateItemStatus(c.Request.Context(), itemID, req.Status)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderItemResponse(item))
}

// FilterItemsHandler retrieves order items matching the query filters.
// GET /orders/items?status=&startDate=&endDate=&itemId=&offset=&limit= -
// Requires the ADMIN role. Dates use the YYYY-MM-DD format.
func (h *OrderHandler) FilterItemsHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	filter, err := parseItemFilter(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	items, total, err := h.orderUseCase.FilterItems(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToFilterItemsResponse(items, total, offset, limit))
}

// parseItemFilter builds an ItemFilter from the request query parameters.
func parseItemFilter(c *gin.Context) (domain.ItemFilter, error) {
	var filter domain.ItemFilter

	if value := c.Query("status"); value != "" {
		status, err := domain.ParseOrderItemStatus(value)
		if err != nil {
			return filter, err
		}
		filter.Status = status
	}

	if value := c.Query("startDate"); value != "" {
		startDate, err := time.Parse(filterDateLayout, value)
		if err != nil {
			return filter, apperrors.Wrap(apperrors.ErrInvalidInput, "startDate must use the YYYY-MM-DD format")
		}
		filter.StartDate = &startDate
	}

	if value := c.Query("endDate"); value != "" {
		endDate, err := time.Parse(filterDateLayout, value)
		if err != nil {
			return filter, apperrors.Wrap(apperrors.ErrInvalidInput, "endDate must use the YYYY-MM-DD format")
		}
		filter.EndDate = &endDate
	}

	if value := c.Query("itemId"); value != "" {
		itemID, err := uuid.Parse(value)
		if err != nil {
			return filter, apperrors.Wrap(apperrors.ErrInvalidInput, "itemId must be a valid uuid")
		}
		filter.ItemID = itemID
	}

	return filter, nil
}
