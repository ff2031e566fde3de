package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT id, name, plan, status, monthly_volume, webhook_url, created_at, updated_at
		FROM merchants WHERE id = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Plan, &m.Status,
		&m.MonthlyVolume, &m.WebhookURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// ReserveMonthlyVolume adds amount to the monthly volume in one conditional
// UPDATE. limit <= 0 disables the ceiling.
func (r *MerchantRepo) ReserveMonthlyVolume(ctx context.Context, id uuid.UUID, amount int64, limit int64) (bool, error) {
	query := `UPDATE merchants
		SET monthly_volume = monthly_volume + $2, updated_at = NOW()
		WHERE id = $1 AND ($3::bigint <= 0 OR monthly_volume + $2 <= $3::bigint)`

	tag, err := r.pool.Exec(ctx, query, id, amount, limit)
	if err != nil {
		return false, fmt.Errorf("reserve monthly volume: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseMonthlyVolume gives back a reservation that did not settle.
func (r *MerchantRepo) ReleaseMonthlyVolume(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `UPDATE merchants SET monthly_volume = GREATEST(monthly_volume - $2, 0), updated_at = NOW() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, amount); err != nil {
		return fmt.Errorf("release monthly volume: %w", err)
	}
	return nil
}

// ResetMonthlyVolume zeroes every merchant's monthly volume.
func (r *MerchantRepo) ResetMonthlyVolume(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE merchants SET monthly_volume = 0, updated_at = NOW() WHERE monthly_volume <> 0`)
	if err != nil {
		return 0, fmt.Errorf("reset monthly volume: %w", err)
	}
	return tag.RowsAffected(), nil
}
