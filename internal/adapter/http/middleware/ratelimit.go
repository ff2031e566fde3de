package middleware

import (
	"strconv"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/logger"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimit throttles requests per API key with the quota of the key's plan.
// Requests without the header pass through untouched; authentication
// rejects them later. Limit headers are set on every counted request.
func RateLimit(limiter ports.RateLimiter, keys ports.APIKeyService, audit ports.AuditTrail, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(HeaderAPIKey)
		if apiKey == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		plan := keys.ResolvePlan(ctx, apiKey)
		decision := limiter.Check(ctx, apiKey, limiter.LimitForPlan(plan))

		c.Header("X-RateLimit-Limit", strconv.FormatInt(decision.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetIn, 10))

		if !decision.Allowed {
			reqLog := logger.For(ctx, log)
			reqLog.Warn().
				Str("plan", string(plan)).
				Int64("limit", decision.Limit).
				Msg("rate limit exceeded")
			audit.Log(ctx, domain.AuditRateLimitExceeded, domain.UnknownMerchant, map[string]string{
				"apiKey": domain.MaskKey(apiKey),
				"plan":   string(plan),
				"limit":  strconv.FormatInt(decision.Limit, 10),
				"path":   c.Request.URL.Path,
			})
			c.Header("Retry-After", strconv.FormatInt(max(decision.ResetIn, 1), 10))
			response.RateLimited(c, decision.Limit, decision.ResetIn)
			return
		}

		c.Next()
	}
}
