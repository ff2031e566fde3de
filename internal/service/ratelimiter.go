package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"payment-orchestrator/config"
	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/rs/zerolog"
)

// RateLimiterImpl implements ports.RateLimiter on top of a shared
// fixed-window counter store.
type RateLimiterImpl struct {
	store   ports.RateLimitStore
	window  time.Duration
	quotas  map[domain.Plan]int64
	metrics ports.Metrics
	log     zerolog.Logger
}

// NewRateLimiter creates a new RateLimiterImpl.
func NewRateLimiter(store ports.RateLimitStore, cfg config.RateLimitConfig, metrics ports.Metrics, log zerolog.Logger) *RateLimiterImpl {
	return &RateLimiterImpl{
		store:  store,
		window: cfg.Window,
		quotas: map[domain.Plan]int64{
			domain.PlanFree:       cfg.Free,
			domain.PlanBasic:      cfg.Basic,
			domain.PlanPro:        cfg.Pro,
			domain.PlanEnterprise: cfg.Enterprise,
		},
		metrics: metrics,
		log:     log,
	}
}

// LimitForPlan returns the per-window quota of a plan. Unknown plans get
// the FREE quota.
func (r *RateLimiterImpl) LimitForPlan(plan domain.Plan) int64 {
	if q, ok := r.quotas[plan]; ok {
		return q
	}
	return r.quotas[domain.PlanFree]
}

// IsAllowed counts one request for apiKey.
func (r *RateLimiterImpl) IsAllowed(ctx context.Context, apiKey string, quota int64) bool {
	return r.Check(ctx, apiKey, quota).Allowed
}

// Remaining reads how many requests are left in the current window.
func (r *RateLimiterImpl) Remaining(ctx context.Context, apiKey string, quota int64) int64 {
	count, _, err := r.store.Peek(ctx, counterKey(apiKey))
	if err != nil {
		r.storeFailed(err, "peek")
		return quota
	}
	return remaining(quota, count)
}

// ResetIn reads the seconds until the current window closes. A key with no
// open window reports a full window.
func (r *RateLimiterImpl) ResetIn(ctx context.Context, apiKey string) int64 {
	count, ttl, err := r.store.Peek(ctx, counterKey(apiKey))
	if err != nil {
		r.storeFailed(err, "peek")
		return seconds(r.window)
	}
	if count == 0 || ttl <= 0 {
		return seconds(r.window)
	}
	return seconds(ttl)
}

// Check increments the counter and decides in one store round trip. The
// request is allowed when the count before this request was below quota.
// Store failures fail open.
func (r *RateLimiterImpl) Check(ctx context.Context, apiKey string, quota int64) ports.RateLimitDecision {
	count, ttl, err := r.store.Increment(ctx, counterKey(apiKey), r.window)
	if err != nil {
		r.storeFailed(err, "increment")
		return ports.RateLimitDecision{
			Allowed:   true,
			Limit:     quota,
			Remaining: quota,
			ResetIn:   seconds(r.window),
		}
	}

	decision := ports.RateLimitDecision{
		Allowed:   count-1 < quota,
		Limit:     quota,
		Remaining: remaining(quota, count),
		ResetIn:   seconds(ttl),
	}
	if decision.ResetIn <= 0 {
		decision.ResetIn = seconds(r.window)
	}
	if !decision.Allowed {
		r.metrics.Incr(ports.MetricRateLimitExceeded, nil)
	}
	return decision
}

func (r *RateLimiterImpl) storeFailed(err error, op string) {
	r.log.Error().Err(err).Str("op", op).Msg("rate limiter store unavailable, failing open")
	r.metrics.Incr(ports.MetricRateLimiterStoreError, map[string]string{"Operation": op})
}

// counterKey hashes the API key so raw keys never reach the counter store.
func counterKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

func remaining(quota, count int64) int64 {
	if left := quota - count; left > 0 {
		return left
	}
	return 0
}

// seconds rounds up so a window with 200ms left still reports 1.
func seconds(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64((d + time.Second - 1) / time.Second)
}
