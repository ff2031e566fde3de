package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const apiKeyColumns = `id, key_hash, prefix, merchant_id, status, created_at, rotated_at, expires_at`

// APIKeyRepo implements ports.APIKeyRepository.
type APIKeyRepo struct {
	pool Pool
}

// NewAPIKeyRepo creates a new APIKeyRepo.
func NewAPIKeyRepo(pool Pool) *APIKeyRepo {
	return &APIKeyRepo{pool: pool}
}

// Create inserts a new key within a database transaction.
func (r *APIKeyRepo) Create(ctx context.Context, tx pgx.Tx, k *domain.APIKey) error {
	query := `INSERT INTO api_keys (` + apiKeyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.exec(tx).Exec(ctx, query,
		k.ID, k.KeyHash, k.Prefix, k.MerchantID,
		k.Status, k.CreatedAt, k.RotatedAt, k.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// GetByID fetches a key by its UUID.
func (r *APIKeyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE id = $1`
	return r.scanAPIKey(r.pool.QueryRow(ctx, query, id))
}

// GetByHash fetches a key by the keyed hash of its raw value.
func (r *APIKeyRepo) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE key_hash = $1`
	return r.scanAPIKey(r.pool.QueryRow(ctx, query, hash))
}

// UpdateStatus changes a key's status. A nil tx runs on the pool.
func (r *APIKeyRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.APIKeyStatus, rotatedAt *time.Time) error {
	query := `UPDATE api_keys SET status = $1, rotated_at = COALESCE($2, rotated_at) WHERE id = $3`

	tag, err := r.exec(tx).Exec(ctx, query, status, rotatedAt, id)
	if err != nil {
		return fmt.Errorf("update api key status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api key not found: %s", id)
	}
	return nil
}

func (r *APIKeyRepo) exec(tx pgx.Tx) execer {
	if tx != nil {
		return tx
	}
	return r.pool
}

func (r *APIKeyRepo) scanAPIKey(row pgx.Row) (*domain.APIKey, error) {
	k := &domain.APIKey{}
	err := row.Scan(
		&k.ID, &k.KeyHash, &k.Prefix, &k.MerchantID,
		&k.Status, &k.CreatedAt, &k.RotatedAt, &k.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan api key: %w", err)
	}
	return k, nil
}
