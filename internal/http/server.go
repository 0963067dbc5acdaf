// Package http provides the API HTTP server, routing and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	addressHTTP "github.com/Santosha2001/ecommerce/internal/address/http"
	authHTTP "github.com/Santosha2001/ecommerce/internal/auth/http"
	catalogHTTP "github.com/Santosha2001/ecommerce/internal/catalog/http"
	"github.com/Santosha2001/ecommerce/internal/config"
	orderHTTP "github.com/Santosha2001/ecommerce/internal/order/http"
	userHTTP "github.com/Santosha2001/ecommerce/internal/user/http"
)

// Handlers groups the feature handlers registered on the API server.
type Handlers struct {
	Auth     *authHTTP.AuthHandler
	User     *userHTTP.UserHandler
	Category *catalogHTTP.CategoryHandler
	Product  *catalogHTTP.ProductHandler
	Order    *orderHTTP.OrderHandler
	Address  *addressHTTP.AddressHandler
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates the API server with its full middleware chain and routes.
// pipeline is the authentication and authorization middleware applied to every
// route. metricsMiddleware may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	handlers Handlers,
	pipeline gin.HandlerFunc,
	metricsMiddleware gin.HandlerFunc,
	logger *slog.Logger,
) *Server {
	s := &Server{
		db:     db,
		logger: logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if metricsMiddleware != nil {
		router.Use(metricsMiddleware)
	}

	// Health endpoints bypass the auth pipeline.
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	s.registerRoutes(cfg, router, handlers, pipeline)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// registerRoutes registers the feature routes behind the auth pipeline. Access
// control is centralized in the pipeline's policy; the routes themselves carry
// no role checks.
func (s *Server) registerRoutes(cfg *config.Config, router *gin.Engine, handlers Handlers, pipeline gin.HandlerFunc) {
	api := router.Group("/")
	api.Use(pipeline)

	auth := api.Group("/auth")
	auth.POST("/register", handlers.Auth.RegisterHandler)
	if cfg.RateLimitLoginEnabled {
		auth.POST("/login",
			authHTTP.LoginRateLimitMiddleware(cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, s.logger),
			handlers.Auth.LoginHandler,
		)
	} else {
		auth.POST("/login", handlers.Auth.LoginHandler)
	}

	api.GET("/users", handlers.User.ListHandler)
	api.GET("/users/me", handlers.User.MeHandler)

	api.POST("/categories", handlers.Category.CreateHandler)
	api.PUT("/categories/:id", handlers.Category.UpdateHandler)
	api.DELETE("/categories/:id", handlers.Category.DeleteHandler)
	api.GET("/categories/:id", handlers.Category.GetHandler)
	api.GET("/categories", handlers.Category.ListHandler)

	api.POST("/products", handlers.Product.CreateHandler)
	api.PUT("/products/:id", handlers.Product.UpdateHandler)
	api.DELETE("/products/:id", handlers.Product.DeleteHandler)
	api.GET("/products/search", handlers.Product.SearchHandler)
	api.GET("/products/category/:id", handlers.Product.ListByCategoryHandler)
	api.GET("/products/:id", handlers.Product.GetHandler)
	api.GET("/products", handlers.Product.ListHandler)

	api.POST("/orders", handlers.Order.PlaceHandler)
	api.PUT("/orders/items/:id/status", handlers.Order.UpdateItemStatusHandler)
	api.GET("/orders/items", handlers.Order.FilterItemsHandler)

	api.POST("/addresses", handlers.Address.SaveHandler)
	api.GET("/addresses", handlers.Address.GetHandler)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	status := "ready"
	code := http.StatusOK

	if s.db == nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		} else {
			components["database"] = "ok"
		}
	}

	c.JSON(code, gin.H{"status": status, "components": components})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
