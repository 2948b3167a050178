package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

func TestGetRateLimitType(t *testing.T) {
	tests := map[string]RateLimitType{
		"/health":                              RateLimitTypeHealth,
		"/api/v1/admin/setup":                  RateLimitTypeAuth,
		"/api/v1/admin/login":                  RateLimitTypeAuth,
		"/api/v1/admin/currency":               RateLimitTypeAdmin,
		"/api/v1/payment/:visitId/submit":      RateLimitTypePayment,
		"/api/v1/telegram":                     RateLimitTypePayment,
		"/api/v1/payment":                      RateLimitTypeCheckout,
		"/api/v1/selections/:id/seats/:seatId": RateLimitTypeCheckout,
		"/api/v1/events/:id/seats":             RateLimitTypePublic,
		"/api/v1/currency":                     RateLimitTypePublic,
		"/swagger/*any":                        RateLimitTypeDefault,
	}
	for path, want := range tests {
		assert.Equal(t, want, getRateLimitType(path), path)
	}
}

func TestIsAllowed_DisabledAndWhitelisted(t *testing.T) {
	rl := NewRateLimiter(nil, &Config{
		Enabled:         false,
		WindowDuration:  time.Minute,
		PaymentRequests: 10,
	})
	res, err := rl.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypePayment)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 10, res.Limit)

	rl = NewRateLimiter(nil, &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		WhitelistedIPs: []string{"10.0.0.1"},
	})
	res, err = rl.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeDefault)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.168.1.9:5555"
	assert.Equal(t, "192.168.1.9", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", getClientIP(c))
}

func TestGetClientIP_RealIPFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Forwarded-For", "not-an-ip")
	c.Request.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", getClientIP(c))
}

func TestMiddleware_WhitelistedPassesWithHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(nil, &Config{
		Enabled:        true,
		WindowDuration: time.Minute,
		PublicRequests: 5,
		WhitelistedIPs: []string{"192.0.2.1"},
	})
	engine := gin.New()
	engine.Use(Middleware(rl, logger.NewDiscard()))
	engine.GET("/api/v1/events", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.RemoteAddr = "192.0.2.1:4000"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
}
