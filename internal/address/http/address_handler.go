// Package http provides HTTP handlers for delivery addresses.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santosha2001/ecommerce/internal/address/http/dto"
	"github.com/Santosha2001/ecommerce/internal/address/usecase"
	authHTTP "github.com/Santosha2001/ecommerce/internal/auth/http"
	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
	"github.com/Santosha2001/ecommerce/internal/httputil"
)

// AddressHandler handles address-related HTTP requests
type AddressHandler struct {
	addressUseCase usecase.AddressUseCase
	logger         *slog.Logger
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressUseCase usecase.AddressUseCase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		addressUseCase: addressUseCase,
		logger:         logger,
	}
}

// SaveHandler creates the calling account's address or applies the provided
// fields to the existing one.
// POST /addresses - Requires an authenticated principal.
func (h *AddressHandler) SaveHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var input usecase.SaveAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	address, err := h.addressUseCase.SaveAddress(c.Request.Context(), principal.ID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAddressResponse(address))
}

// GetHandler retrieves the calling account's address.
// GET /addresses - Requires an authenticated principal.
func (h *AddressHandler) GetHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	address, err := h.addressUseCase.GetAddress(c.Request.Context(), principal.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAddressResponse(address))
}
