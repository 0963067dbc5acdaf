package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/items"+query, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	offset, limit, err := ParsePagination(paginationContext(""))

	assert.NoError(t, err)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 50, limit)
}

func TestParsePaginationExplicit(t *testing.T) {
	offset, limit, err := ParsePagination(paginationContext("?offset=100&limit=25"))

	assert.NoError(t, err)
	assert.Equal(t, 100, offset)
	assert.Equal(t, 25, limit)
}

func TestParsePaginationInvalid(t *testing.T) {
	tests := []string{
		"?offset=-1",
		"?offset=abc",
		"?limit=0",
		"?limit=1001",
		"?limit=abc",
	}

	for _, query := range tests {
		_, _, err := ParsePagination(paginationContext(query))
		assert.Error(t, err, "expected error for query %q", query)
	}
}
