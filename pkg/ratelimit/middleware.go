package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/utils/response"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

const msgTooManyRequests = "طلبات كثيرة، يرجى المحاولة بعد قليل"

// routeRule maps a route template to a limit class. First match wins.
type routeRule struct {
	class RateLimitType
	match func(path string) bool
}

var routeRules = []routeRule{
	{RateLimitTypeHealth, prefixed("/health", "/ping", "/status")},
	{RateLimitTypeAuth, suffixed("/admin/setup", "/admin/login")},
	{RateLimitTypeAdmin, containing("/admin/")},
	// order submission reaches the notification sink
	{RateLimitTypePayment, func(p string) bool {
		return strings.Contains(p, "/payment/") && strings.HasSuffix(p, "/submit") || strings.HasSuffix(p, "/telegram")
	}},
	{RateLimitTypeCheckout, containing("/selections", "/checkout", "/payment", "/visits")},
	{RateLimitTypePublic, containing("/events", "/settings", "/currency")},
}

// Middleware applies the limit matching the route
func Middleware(rateLimiter *RateLimiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		class := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), ip, class)
		if err != nil {
			// fail open when Redis errors
			log.LogHTTPError(c, err, http.StatusInternalServerError)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime, 10))

		if result.Allowed {
			c.Next()
			return
		}

		log.LogRateLimitExceeded(c.Request.Context(), ip, c.FullPath())
		response.RespondJSON(c, "error", http.StatusTooManyRequests, msgTooManyRequests, nil,
			response.RetryHint{Retry: true})
		c.Abort()
	}
}

func getRateLimitType(path string) RateLimitType {
	for _, rule := range routeRules {
		if rule.match(path) {
			return rule.class
		}
	}
	return RateLimitTypeDefault
}

// getClientIP prefers the first forwarded address, then X-Real-IP, then the peer
func getClientIP(c *gin.Context) string {
	candidates := []string{c.GetHeader("X-Real-IP")}
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		candidates = append([]string{strings.TrimSpace(first)}, candidates...)
	}
	for _, ip := range candidates {
		if net.ParseIP(ip) != nil {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

func prefixed(prefixes ...string) func(string) bool {
	return func(p string) bool {
		for _, s := range prefixes {
			if strings.HasPrefix(p, s) {
				return true
			}
		}
		return false
	}
}

func suffixed(suffixes ...string) func(string) bool {
	return func(p string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(p, s) {
				return true
			}
		}
		return false
	}
}

func containing(parts ...string) func(string) bool {
	return func(p string) bool {
		for _, s := range parts {
			if strings.Contains(p, s) {
				return true
			}
		}
		return false
	}
}
