package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santosha2001/ecommerce/internal/auth/http/dto"
	authUseCase "github.com/Santosha2001/ecommerce/internal/auth/usecase"
	"github.com/Santosha2001/ecommerce/internal/httputil"
	userUseCase "github.com/Santosha2001/ecommerce/internal/user/usecase"
	customValidation "github.com/Santosha2001/ecommerce/internal/validation"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUC authUseCase.AuthUseCase,
	userUC userUseCase.UseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		userUseCase: userUC,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /auth/register - Public.
// Returns 201 Created with a confirmation message.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := userUseCase.RegisterUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}

	if _, err := h.userUseCase.RegisterUser(c.Request.Context(), input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user successfully registered"})
}

// LoginHandler verifies credentials and issues a signed token.
// POST /auth/login - Public, rate limited per address.
// Returns 200 OK with the token, its lifetime and the account role.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     output.Token,
		ExpiresIn: output.ExpiresIn,
		Role:      string(output.Role),
	})
}
