package service

import (
	"context"
	"errors"
	"testing"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupGatewayAdmin(t *testing.T) (ports.GatewayAdminService, *mocks.MockGatewayRepository, *mocks.MockMerchantRepository, *mocks.MockGatewayRouter) {
	ctrl := gomock.NewController(t)
	gateways := mocks.NewMockGatewayRepository(ctrl)
	merchants := mocks.NewMockMerchantRepository(ctrl)
	router := mocks.NewMockGatewayRouter(ctrl)
	return NewGatewayAdminService(gateways, merchants, router, newTestLogger()), gateways, merchants, router
}

func TestGatewayAdmin_ListGateways(t *testing.T) {
	svc, gateways, _, router := setupGatewayAdmin(t)
	ctx := context.Background()

	gateways.EXPECT().ListAll(ctx).Return([]domain.Gateway{{Code: "CIELO"}, {Code: "LEGACY"}}, nil)
	router.EXPECT().HasAdapter("CIELO").Return(true)
	router.EXPECT().HasAdapter("LEGACY").Return(false)

	views, err := svc.ListGateways(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Registered)
	assert.False(t, views[1].Registered)
	assert.Equal(t, "LEGACY", views[1].Code)
}

func TestGatewayAdmin_SetHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes code", func(t *testing.T) {
		svc, gateways, _, _ := setupGatewayAdmin(t)
		gateways.EXPECT().UpdateHealth(ctx, "REDE", domain.HealthStatusDown).Return(true, nil)
		require.NoError(t, svc.SetHealth(ctx, " rede ", domain.HealthStatusDown))
	})

	t.Run("unknown gateway", func(t *testing.T) {
		svc, gateways, _, _ := setupGatewayAdmin(t)
		gateways.EXPECT().UpdateHealth(ctx, "NOPE", domain.HealthStatusUp).Return(false, nil)
		assertAppError(t, svc.SetHealth(ctx, "NOPE", domain.HealthStatusUp), "NF_001")
	})

	t.Run("invalid value", func(t *testing.T) {
		svc, _, _, _ := setupGatewayAdmin(t)
		assertAppError(t, svc.SetHealth(ctx, "REDE", domain.HealthStatus("SLOW")), "VAL_001")
	})
}

func TestGatewayAdmin_SetStatus(t *testing.T) {
	ctx := context.Background()
	svc, gateways, _, _ := setupGatewayAdmin(t)

	gateways.EXPECT().UpdateStatus(ctx, "PIX", domain.GatewayStatusInactive).Return(true, nil)
	require.NoError(t, svc.SetStatus(ctx, "pix", domain.GatewayStatusInactive))

	assertAppError(t, svc.SetStatus(ctx, "PIX", domain.GatewayStatus("PAUSED")), "VAL_001")

	gateways.EXPECT().UpdateStatus(ctx, "PIX", domain.GatewayStatusActive).Return(false, errors.New("down"))
	assertAppError(t, svc.SetStatus(ctx, "PIX", domain.GatewayStatusActive), "SYS_001")
}

func TestGatewayAdmin_ResetVolumes(t *testing.T) {
	ctx := context.Background()
	svc, gateways, merchants, _ := setupGatewayAdmin(t)

	gateways.EXPECT().ResetDailyVolume(ctx).Return(int64(4), nil)
	n, err := svc.ResetDailyVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	merchants.EXPECT().ResetMonthlyVolume(ctx).Return(int64(120), nil)
	n, err = svc.ResetMonthlyVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), n)
}
