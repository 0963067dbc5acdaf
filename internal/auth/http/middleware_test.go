package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/Santosha2001/ecommerce/internal/auth/domain"
	"github.com/Santosha2001/ecommerce/internal/auth/service"
	authUseCase "github.com/Santosha2001/ecommerce/internal/auth/usecase"
	userDomain "github.com/Santosha2001/ecommerce/internal/user/domain"
)

type staticDirectory struct {
	users map[string]*userDomain.User
}

func (d *staticDirectory) GetByEmail(_ context.Context, email string) (*userDomain.User, error) {
	user, ok := d.users[email]
	if !ok {
		return nil, userDomain.ErrUserNotFound
	}
	return user, nil
}

func setupPipeline(t *testing.T) (*gin.Engine, service.TokenCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := service.NewJWTTokenCodec([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	directory := &staticDirectory{users: map[string]*userDomain.User{
		"user@example.com": {
			ID:    uuid.Must(uuid.NewV7()),
			Email: "user@example.com",
			Role:  authDomain.RoleUser,
		},
		"admin@example.com": {
			ID:    uuid.Must(uuid.NewV7()),
			Email: "admin@example.com",
			Role:  authDomain.RoleAdmin,
		},
	}}

	authenticator := authUseCase.NewAuthenticator(codec, directory)
	logger := slog.New(slog.DiscardHandler)

	router := gin.New()
	router.Use(PipelineMiddleware(authenticator, authDomain.DefaultPolicy(), nil, logger))

	ok := func(c *gin.Context) {
		principal, _ := GetPrincipal(c.Request.Context())
		email := ""
		if principal != nil {
			email = principal.Email
		}
		c.JSON(http.StatusOK, gin.H{"principal": email})
	}
	router.GET("/products", ok)
	router.POST("/categories", ok)
	router.GET("/users/me", ok)
	router.GET("/users", ok)

	return router, codec
}

func issueToken(t *testing.T, codec service.TokenCodec, email string) string {
	t.Helper()
	token, err := codec.Encode(authDomain.NewClaims(email, time.Now()))
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPipelinePublicRouteAnonymous(t *testing.T) {
	router, _ := setupPipeline(t)

	w := doRequest(router, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPipelineProtectedRouteAnonymous(t *testing.T) {
	router, _ := setupPipeline(t)

	w := doRequest(router, http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPipelineAdminRouteAsUser(t *testing.T) {
	router, codec := setupPipeline(t)

	token := issueToken(t, codec, "user@example.com")
	w := doRequest(router, http.MethodPost, "/categories", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPipelineAdminRouteAsAdmin(t *testing.T) {
	router, codec := setupPipeline(t)

	token := issueToken(t, codec, "admin@example.com")
	w := doRequest(router, http.MethodPost, "/categories", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestPipelineGarbageTokenIsAnonymous(t *testing.T) {
	router, _ := setupPipeline(t)

	// A garbage token downgrades to anonymous: public routes still work,
	// protected routes answer 401.
	w := doRequest(router, http.MethodGet, "/products", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/users/me", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPipelineExpiredToken(t *testing.T) {
	router, codec := setupPipeline(t)

	expired := authDomain.Claims{
		Subject:   "user@example.com",
		IssuedAt:  time.Now().Add(-2 * authDomain.TokenTTL).Truncate(time.Second),
		ExpiresAt: time.Now().Add(-authDomain.TokenTTL).Truncate(time.Second),
	}
	token, err := codec.Encode(expired)
	require.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/users/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPipelineUnknownSubject(t *testing.T) {
	router, codec := setupPipeline(t)

	token := issueToken(t, codec, "deleted@example.com")

	// Valid signature but no matching account: reported as not found even on
	// a public route, because it signals data inconsistency.
	w := doRequest(router, http.MethodGet, "/products", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPipelineUserListingRequiresAdmin(t *testing.T) {
	router, codec := setupPipeline(t)

	userToken := issueToken(t, codec, "user@example.com")
	adminToken := issueToken(t, codec, "admin@example.com")

	assert.Equal(t, http.StatusForbidden, doRequest(router, http.MethodGet, "/users", userToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/users", adminToken).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/users/me", userToken).Code)
}
