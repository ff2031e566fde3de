package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/logger"

	"github.com/rs/zerolog"
)

// GatewayRouterImpl implements ports.GatewayRouter. The registry is fixed
// at construction; routing state is read from the repository on every call
// so health and status changes apply to the next request.
type GatewayRouterImpl struct {
	adapters map[string]ports.GatewayAdapter
	codes    []string
	gateways ports.GatewayRepository
	audit    ports.AuditTrail
	metrics  ports.Metrics
	timeout  time.Duration
	log      zerolog.Logger
}

// NewGatewayRouter builds the registry. Two adapters reporting the same
// normalized code fail construction.
func NewGatewayRouter(
	adapters []ports.GatewayAdapter,
	gateways ports.GatewayRepository,
	audit ports.AuditTrail,
	metrics ports.Metrics,
	timeout time.Duration,
	log zerolog.Logger,
) (*GatewayRouterImpl, error) {
	registry := make(map[string]ports.GatewayAdapter, len(adapters))
	codes := make([]string, 0, len(adapters))
	for _, a := range adapters {
		code := domain.NormalizeGatewayCode(a.Code())
		if code == "" {
			return nil, apperror.Validation("gateway adapter reported an empty code")
		}
		if _, dup := registry[code]; dup {
			return nil, apperror.ErrDuplicateGateway(code)
		}
		registry[code] = a
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &GatewayRouterImpl{
		adapters: registry,
		codes:    codes,
		gateways: gateways,
		audit:    audit,
		metrics:  metrics,
		timeout:  timeout,
		log:      log,
	}, nil
}

// GetAdapter looks up an adapter by case-insensitive code.
func (r *GatewayRouterImpl) GetAdapter(code string) (ports.GatewayAdapter, error) {
	normalized := domain.NormalizeGatewayCode(code)
	if normalized == "" {
		return nil, apperror.Validation("gateway code is required")
	}
	a, ok := r.adapters[normalized]
	if !ok {
		return nil, apperror.ErrNotFound("gateway " + normalized)
	}
	return a, nil
}

// HasAdapter reports whether code is registered. Empty codes are never
// registered.
func (r *GatewayRouterImpl) HasAdapter(code string) bool {
	_, ok := r.adapters[domain.NormalizeGatewayCode(code)]
	return ok
}

// ListSupportedCodes returns the registered codes in sorted order.
func (r *GatewayRouterImpl) ListSupportedCodes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// CountAdapters returns the registry size.
func (r *GatewayRouterImpl) CountAdapters() int {
	return len(r.adapters)
}

// SelectForRouting authorizes req against eligible gateways in routing
// order, failing over on retryable errors. Each candidate's daily volume is
// reserved atomically before the call and released if the call fails.
func (r *GatewayRouterImpl) SelectForRouting(ctx context.Context, req ports.AuthorizeRequest) (*ports.RoutingResult, error) {
	log := logger.For(ctx, r.log)
	merchantID := merchantFromContext(ctx)

	candidates, err := r.gateways.ListSelectable(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list selectable gateways: %w", err))
	}
	eligible := candidates[:0]
	for _, g := range candidates {
		if g.IsSelectable() {
			eligible = append(eligible, g)
		}
	}
	domain.SortForRouting(eligible)

	var reasons []error
	attempts := 0
	for _, g := range eligible {
		if err := ctx.Err(); err != nil {
			reasons = append(reasons, fmt.Errorf("routing aborted: %w", err))
			break
		}

		adapter, ok := r.adapters[domain.NormalizeGatewayCode(g.Code)]
		if !ok {
			log.Warn().Str("gateway", g.Code).Msg("selectable gateway has no registered adapter, skipping")
			reasons = append(reasons, fmt.Errorf("%s: no adapter registered", g.Code))
			continue
		}
		code := adapter.Code()

		reserved, err := r.gateways.ReserveVolume(ctx, g.Code, req.Amount)
		if err != nil {
			reasons = append(reasons, fmt.Errorf("%s: reserve volume: %w", code, err))
			continue
		}
		if !reserved {
			reasons = append(reasons, fmt.Errorf("%s: daily limit reached", code))
			continue
		}

		attempts++
		result, err := r.authorize(ctx, adapter, req)
		if err == nil {
			r.recordOutcome(ctx, g.Code, true)
			log.Info().Str("gateway", code).Int("attempts", attempts).Msg("payment routed")
			return &ports.RoutingResult{GatewayCode: code, Result: result, Attempts: attempts}, nil
		}

		r.releaseVolume(ctx, g.Code, req.Amount)

		if !apperror.IsRetryable(err) {
			log.Info().Err(err).Str("gateway", code).Msg("gateway declined, stopping failover")
			return &ports.RoutingResult{GatewayCode: code, Attempts: attempts}, err
		}

		r.recordOutcome(ctx, g.Code, false)
		reasons = append(reasons, fmt.Errorf("%s: %w", code, err))
		log.Warn().Err(err).Str("gateway", code).Msg("gateway failed, trying next candidate")
		r.metrics.Incr(ports.MetricGatewayFailover, map[string]string{"Gateway": code})
		r.audit.Log(ctx, domain.AuditGatewayFailover, merchantID, map[string]string{
			"gateway": code,
			"attempt": strconv.Itoa(attempts),
			"reason":  err.Error(),
		})
	}

	reason := errors.Join(reasons...)
	if reason == nil {
		reason = errors.New("no eligible gateways")
	}
	log.Error().Err(reason).Int("candidates", len(eligible)).Msg("no available gateway")
	r.metrics.Incr(ports.MetricNoAvailableGateway, nil)
	r.audit.Log(ctx, domain.AuditGatewayUnavailable, merchantID, map[string]string{
		"candidates": strconv.Itoa(len(eligible)),
		"attempts":   strconv.Itoa(attempts),
	})
	return nil, apperror.ErrNoAvailableGateway(reason)
}

// authorize bounds the adapter call by the router timeout. Errors that do
// not carry a kind (deadline hits, raw network errors) count as transient.
func (r *GatewayRouterImpl) authorize(ctx context.Context, adapter ports.GatewayAdapter, req ports.AuthorizeRequest) (*ports.GatewayResult, error) {
	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	result, err := adapter.Authorize(callCtx, req)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindInternal {
			return nil, apperror.GatewayTransient(adapter.Code(), err)
		}
		return nil, err
	}
	return result, nil
}

func (r *GatewayRouterImpl) recordOutcome(ctx context.Context, code string, success bool) {
	if err := r.gateways.RecordOutcome(context.WithoutCancel(ctx), code, success); err != nil {
		r.log.Warn().Err(err).Str("gateway", code).Msg("failed to record gateway outcome")
	}
}

func (r *GatewayRouterImpl) releaseVolume(ctx context.Context, code string, amount int64) {
	if err := r.gateways.ReleaseVolume(context.WithoutCancel(ctx), code, amount); err != nil {
		r.log.Error().Err(err).Str("gateway", code).Int64("amount", amount).Msg("failed to release gateway volume")
	}
}
