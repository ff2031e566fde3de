package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-orchestrator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const gatewayColumns = `code, status, health_status, priority, success_rate, daily_volume, daily_limit, updated_at`

// GatewayRepo implements ports.GatewayRepository.
type GatewayRepo struct {
	pool Pool
}

// NewGatewayRepo creates a new GatewayRepo.
func NewGatewayRepo(pool Pool) *GatewayRepo {
	return &GatewayRepo{pool: pool}
}

// ListAll returns every stored gateway in routing order.
func (r *GatewayRepo) ListAll(ctx context.Context) ([]domain.Gateway, error) {
	query := `SELECT ` + gatewayColumns + ` FROM gateways ORDER BY priority ASC, success_rate DESC, code ASC`
	return r.list(ctx, query)
}

// ListSelectable returns the routing candidates. Every call reads the table,
// so status and health changes apply to the next payment.
func (r *GatewayRepo) ListSelectable(ctx context.Context) ([]domain.Gateway, error) {
	query := `SELECT ` + gatewayColumns + ` FROM gateways
		WHERE status = 'ACTIVE' AND health_status = 'UP' AND daily_volume < daily_limit
		ORDER BY priority ASC, success_rate DESC, code ASC`
	return r.list(ctx, query)
}

// GetByCode fetches a gateway by its normalized code.
func (r *GatewayRepo) GetByCode(ctx context.Context, code string) (*domain.Gateway, error) {
	query := `SELECT ` + gatewayColumns + ` FROM gateways WHERE code = $1`

	g := &domain.Gateway{}
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&g.Code, &g.Status, &g.HealthStatus, &g.Priority,
		&g.SuccessRate, &g.DailyVolume, &g.DailyLimit, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gateway by code: %w", err)
	}
	return g, nil
}

// ReserveVolume is a single conditional UPDATE: the ceiling check and the
// increment happen in one statement under the row lock.
func (r *GatewayRepo) ReserveVolume(ctx context.Context, code string, amount int64) (bool, error) {
	query := `UPDATE gateways
		SET daily_volume = daily_volume + $2, updated_at = NOW()
		WHERE code = $1 AND status = 'ACTIVE' AND health_status = 'UP'
		AND daily_volume + $2 <= daily_limit`

	tag, err := r.pool.Exec(ctx, query, code, amount)
	if err != nil {
		return false, fmt.Errorf("reserve gateway volume: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseVolume gives back a reservation whose authorization failed.
func (r *GatewayRepo) ReleaseVolume(ctx context.Context, code string, amount int64) error {
	query := `UPDATE gateways SET daily_volume = GREATEST(daily_volume - $2, 0), updated_at = NOW() WHERE code = $1`

	if _, err := r.pool.Exec(ctx, query, code, amount); err != nil {
		return fmt.Errorf("release gateway volume: %w", err)
	}
	return nil
}

// RecordOutcome folds one adapter outcome into the success rate average.
func (r *GatewayRepo) RecordOutcome(ctx context.Context, code string, success bool) error {
	sample := 0.0
	if success {
		sample = 1.0
	}
	query := `UPDATE gateways
		SET success_rate = LEAST(GREATEST((1 - $2::float8) * success_rate + $2::float8 * $3::float8, 0), 1), updated_at = NOW()
		WHERE code = $1`

	if _, err := r.pool.Exec(ctx, query, code, domain.SuccessRateAlpha, sample); err != nil {
		return fmt.Errorf("record gateway outcome: %w", err)
	}
	return nil
}

// UpdateHealth sets the health flag. It reports false for unknown codes.
func (r *GatewayRepo) UpdateHealth(ctx context.Context, code string, health domain.HealthStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE gateways SET health_status = $1, updated_at = NOW() WHERE code = $2`, health, code)
	if err != nil {
		return false, fmt.Errorf("update gateway health: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus sets the administrative status. It reports false for unknown codes.
func (r *GatewayRepo) UpdateStatus(ctx context.Context, code string, status domain.GatewayStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE gateways SET status = $1, updated_at = NOW() WHERE code = $2`, status, code)
	if err != nil {
		return false, fmt.Errorf("update gateway status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ResetDailyVolume zeroes every daily counter and returns how many changed.
func (r *GatewayRepo) ResetDailyVolume(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE gateways SET daily_volume = 0, updated_at = NOW() WHERE daily_volume <> 0`)
	if err != nil {
		return 0, fmt.Errorf("reset gateway daily volume: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *GatewayRepo) list(ctx context.Context, query string) ([]domain.Gateway, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list gateways: %w", err)
	}
	defer rows.Close()

	var gateways []domain.Gateway
	for rows.Next() {
		var g domain.Gateway
		if err := rows.Scan(
			&g.Code, &g.Status, &g.HealthStatus, &g.Priority,
			&g.SuccessRate, &g.DailyVolume, &g.DailyLimit, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gateway row: %w", err)
		}
		gateways = append(gateways, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gateway rows: %w", err)
	}
	return gateways, nil
}
