package middleware

import (
	"strconv"
	"time"

	"storefront-ledger/internal/core/ports"
	"storefront-ledger/pkg/apperror"
	"storefront-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Endpoint groups sharing one counter per caller.
const (
	GroupCheckout = "checkout"
	GroupFunds    = "funds"
	GroupReview   = "review"
	GroupReads    = "reads"
)

// RateLimitRule allows Limit hits per fixed Window.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

func DefaultRateLimitRules() map[string]RateLimitRule {
	perMinute := func(n int64) RateLimitRule { return RateLimitRule{Limit: n, Window: time.Minute} }
	return map[string]RateLimitRule{
		GroupCheckout: perMinute(30),
		GroupFunds:    perMinute(10),
		GroupReview:   perMinute(120),
		GroupReads:    perMinute(300),
	}
}

// RateLimiter throttles one endpoint group. When the counter store is
// unavailable the request is let through and the failure is logged.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := callerKey(c) + ":" + group
		res, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit store unavailable, request allowed")
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt, 10))

		if res.Allowed {
			c.Next()
			return
		}
		wait := max(res.ResetAt-time.Now().Unix(), 1)
		h.Set("Retry-After", strconv.FormatInt(wait, 10))
		response.Error(c, apperror.ErrRateLimitExceeded())
		c.Abort()
	}
}

// callerKey identifies authenticated callers by user id, anonymous ones by IP.
func callerKey(c *gin.Context) string {
	if actor, ok := ActorFrom(c); ok {
		return "user:" + actor.UserID.String()
	}
	return "ip:" + c.ClientIP()
}
