package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"knowledge-base/internal/metrics"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(60, 2))
	router.POST("/api/v1/groups/:groupId/articles", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	post := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/1/articles", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	initial := testutil.ToFloat64(metrics.HTTPRateLimited)

	assert.Equal(t, http.StatusCreated, post("10.0.0.1:5000"))
	assert.Equal(t, http.StatusCreated, post("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:5002"))
	assert.Equal(t, http.StatusCreated, post("10.0.0.2:5000"), "other clients keep their own bucket")

	assert.Equal(t, initial+1, testutil.ToFloat64(metrics.HTTPRateLimited))
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(0, 0))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestIPRateLimiter_DropsIdleClients(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(1, 1)
	l.now = func() time.Time { return now }
	l.lastCleanup = now

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))

	now = now.Add(limiterIdleTTL + time.Minute)
	assert.True(t, l.allow("10.0.0.2"))
	assert.NotContains(t, l.limiters, "10.0.0.1")
	assert.Contains(t, l.limiters, "10.0.0.2")
}
