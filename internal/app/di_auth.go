package app

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
	authHTTP "github.com/Santosha2001/ecommerce/internal/auth/http"
	authService "github.com/Santosha2001/ecommerce/internal/auth/service"
	authUseCase "github.com/Santosha2001/ecommerce/internal/auth/usecase"
)

// authComponents holds the authentication pipeline components.
type authComponents struct {
	tokenCodec      authService.TokenCodec
	passwordService authService.PasswordService
	authenticator   authUseCase.Authenticator
	authUseCase     authUseCase.AuthUseCase
	authHandler     *authHTTP.AuthHandler
	authPipeline    gin.HandlerFunc

	tokenCodecInit      sync.Once
	passwordServiceInit sync.Once
	authenticatorInit   sync.Once
	authUseCaseInit     sync.Once
	authHandlerInit     sync.Once
	authPipelineInit    sync.Once
}

// TokenCodec returns the signed token codec built from the configured secret.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = authService.NewJWTTokenCodec([]byte(c.config.JWTSecret))
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	var err error
	c.passwordServiceInit.Do(func() {
		c.passwordService, err = authService.NewPasswordService()
		if err != nil {
			c.initErrors["passwordService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// Authenticator returns the per-request identity resolver.
func (c *Container) Authenticator() (authUseCase.Authenticator, error) {
	var err error
	c.authenticatorInit.Do(func() {
		c.authenticator, err = c.initAuthenticator()
		if err != nil {
			c.initErrors["authenticator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authenticator"]; exists {
		return nil, storedErr
	}
	return c.authenticator, nil
}

// AuthUseCase returns the login use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the registration and login handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// AuthPipelineMiddleware returns the authentication and authorization
// middleware applied to every API route.
func (c *Container) AuthPipelineMiddleware() (gin.HandlerFunc, error) {
	var err error
	c.authPipelineInit.Do(func() {
		c.authPipeline, err = c.initAuthPipelineMiddleware()
		if err != nil {
			c.initErrors["authPipeline"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authPipeline"]; exists {
		return nil, storedErr
	}
	return c.authPipeline, nil
}

// initAuthenticator creates the identity resolver with its dependencies.
func (c *Container) initAuthenticator() (authUseCase.Authenticator, error) {
	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for authenticator: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for authenticator: %w", err)
	}

	return authUseCase.NewAuthenticator(codec, userRepo), nil
}

// initAuthUseCase creates the login use case with its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	passwords, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for auth use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	return authUseCase.NewAuthUseCase(userRepo, codec, passwords, businessMetrics), nil
}

// initAuthHandler creates the auth handler with its dependencies.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	userUC, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth handler: %w", err)
	}

	return authHTTP.NewAuthHandler(authUC, userUC, c.Logger()), nil
}

// initAuthPipelineMiddleware creates the pipeline middleware with the default
// route policy.
func (c *Container) initAuthPipelineMiddleware() (gin.HandlerFunc, error) {
	authenticator, err := c.Authenticator()
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticator for pipeline: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for pipeline: %w", err)
	}

	return authHTTP.PipelineMiddleware(
		authenticator,
		authDomain.DefaultPolicy(),
		businessMetrics,
		c.Logger(),
	), nil
}
