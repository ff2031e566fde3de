package service

import (
	"context"
	"fmt"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
)

// gatewayAdminService implements ports.GatewayAdminService.
type gatewayAdminService struct {
	gatewayRepo  ports.GatewayRepository
	merchantRepo ports.MerchantRepository
	router       ports.GatewayRouter
	log          zerolog.Logger
}

// NewGatewayAdminService creates the operator-facing gateway service.
func NewGatewayAdminService(
	gatewayRepo ports.GatewayRepository,
	merchantRepo ports.MerchantRepository,
	router ports.GatewayRouter,
	log zerolog.Logger,
) ports.GatewayAdminService {
	return &gatewayAdminService{
		gatewayRepo:  gatewayRepo,
		merchantRepo: merchantRepo,
		router:       router,
		log:          log,
	}
}

// ListGateways returns stored gateways in routing order, flagged with
// whether an adapter is registered for each.
func (s *gatewayAdminService) ListGateways(ctx context.Context) ([]ports.GatewayView, error) {
	gateways, err := s.gatewayRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	views := make([]ports.GatewayView, 0, len(gateways))
	for _, g := range gateways {
		views = append(views, ports.GatewayView{Gateway: g, Registered: s.router.HasAdapter(g.Code)})
	}
	return views, nil
}

func (s *gatewayAdminService) SetHealth(ctx context.Context, code string, health domain.HealthStatus) error {
	switch health {
	case domain.HealthStatusUp, domain.HealthStatusDown:
	default:
		return apperror.Validation(fmt.Sprintf("invalid health status %q", health))
	}

	code = domain.NormalizeGatewayCode(code)
	ok, err := s.gatewayRepo.UpdateHealth(ctx, code, health)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		return apperror.ErrNotFound("gateway")
	}

	s.log.Info().Str("gateway", code).Str("health", string(health)).Msg("gateway health updated")
	return nil
}

func (s *gatewayAdminService) SetStatus(ctx context.Context, code string, status domain.GatewayStatus) error {
	switch status {
	case domain.GatewayStatusActive, domain.GatewayStatusInactive:
	default:
		return apperror.Validation(fmt.Sprintf("invalid gateway status %q", status))
	}

	code = domain.NormalizeGatewayCode(code)
	ok, err := s.gatewayRepo.UpdateStatus(ctx, code, status)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		return apperror.ErrNotFound("gateway")
	}

	s.log.Info().Str("gateway", code).Str("status", string(status)).Msg("gateway status updated")
	return nil
}

// ResetDailyVolume zeroes every gateway's daily volume. Called by the daily
// boundary job.
func (s *gatewayAdminService) ResetDailyVolume(ctx context.Context) (int64, error) {
	n, err := s.gatewayRepo.ResetDailyVolume(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	s.log.Info().Int64("gateways", n).Msg("daily gateway volume reset")
	return n, nil
}

// ResetMonthlyVolume zeroes every merchant's monthly volume.
func (s *gatewayAdminService) ResetMonthlyVolume(ctx context.Context) (int64, error) {
	n, err := s.merchantRepo.ResetMonthlyVolume(ctx)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	s.log.Info().Int64("merchants", n).Msg("monthly merchant volume reset")
	return n, nil
}
