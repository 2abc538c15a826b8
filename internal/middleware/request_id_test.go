package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledge-base/internal/logger"
	"knowledge-base/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string, string) {
	t.Helper()
	router := gin.New()
	router.Use(middleware.RequestID())

	var fromGin, fromCtx string
	router.GET("/articles", func(c *gin.Context) {
		fromGin = middleware.GetRequestID(c)
		fromCtx = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	if header != "" {
		req.Header.Set(middleware.RequestIDHeader, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w, fromGin, fromCtx
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	w, fromGin, fromCtx := serveWithRequestID(t, "")

	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, fromGin)
	assert.Equal(t, requestID, fromCtx)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	w, fromGin, fromCtx := serveWithRequestID(t, "client-provided-id-12345")

	assert.Equal(t, "client-provided-id-12345", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "client-provided-id-12345", fromGin)
	assert.Equal(t, "client-provided-id-12345", fromCtx)
}

func TestRequestID_DifferentPerRequest(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		_, id, _ := serveWithRequestID(t, "")
		seen[id] = true
	}
	assert.Len(t, seen, 3)
}

func TestGetRequestID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, 12345)
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, "test-request-id")
	assert.Equal(t, "test-request-id", middleware.GetRequestID(c))
}
