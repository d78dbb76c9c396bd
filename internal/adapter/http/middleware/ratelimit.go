package middleware

import (
	"fmt"
	"strconv"
	"time"

	"cubo-pix-gateway/config"
	"cubo-pix-gateway/internal/core/ports"
	"cubo-pix-gateway/pkg/apperror"
	"cubo-pix-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit groups.
const (
	GroupPixCreate  = "pix_create"
	GroupCheckout   = "checkout"
	GroupAdminLogin = "admin_login"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-minute limits for each endpoint
// group. Groups with a non-positive limit are left out.
func DefaultRateLimitRules(cfg config.RateLimitConfig) map[string]RateLimitRule {
	rules := make(map[string]RateLimitRule, 3)
	add := func(group string, limit int64) {
		if limit > 0 {
			rules[group] = RateLimitRule{Limit: limit, Window: time.Minute}
		}
	}
	add(GroupPixCreate, cfg.PixPerMinute)
	add(GroupCheckout, cfg.CheckoutPerMinute)
	add(GroupAdminLogin, cfg.LoginPerMinute)
	return rules
}

// RateLimiter creates a rate-limiting middleware for a given endpoint
// group, keyed by client IP. Store failures let the request through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.AbortWithError(c, apperror.ErrRateLimitExceeded())
			return
		}

		c.Next()
	}
}
