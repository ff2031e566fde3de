package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const webhookEventColumns = `id, transaction_id, merchant_id, event_type, payload, status, attempts,
	max_attempts, error_message, version, last_attempt_at, created_at, updated_at`

// WebhookEventRepo implements ports.WebhookEventRepository.
type WebhookEventRepo struct {
	pool Pool
}

// NewWebhookEventRepo creates a PostgreSQL-backed webhook event repository.
func NewWebhookEventRepo(pool Pool) *WebhookEventRepo {
	return &WebhookEventRepo{pool: pool}
}

// Create inserts a new event.
func (r *WebhookEventRepo) Create(ctx context.Context, e *domain.WebhookEvent) error {
	query := `INSERT INTO webhook_events (` + webhookEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.TransactionID, e.MerchantID, e.EventType, e.Payload,
		e.Status, e.Attempts, e.MaxAttempts, e.ErrorMessage, e.Version,
		e.LastAttemptAt, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook event: %w", err)
	}
	return nil
}

// GetByID fetches an event by UUID.
func (r *WebhookEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEvent, error) {
	query := `SELECT ` + webhookEventColumns + ` FROM webhook_events WHERE id = $1`

	e := &domain.WebhookEvent{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.TransactionID, &e.MerchantID, &e.EventType, &e.Payload,
		&e.Status, &e.Attempts, &e.MaxAttempts, &e.ErrorMessage, &e.Version,
		&e.LastAttemptAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook event: %w", err)
	}
	return e, nil
}

// Update is an optimistic write: it only lands if nobody else wrote the row
// since e was read.
func (r *WebhookEventRepo) Update(ctx context.Context, e *domain.WebhookEvent) error {
	now := time.Now().UTC()
	query := `UPDATE webhook_events
		SET status = $1, attempts = $2, error_message = $3, last_attempt_at = $4,
			version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7`

	tag, err := r.pool.Exec(ctx, query,
		e.Status, e.Attempts, e.ErrorMessage, e.LastAttemptAt, now, e.ID, e.Version,
	)
	if err != nil {
		return fmt.Errorf("update webhook event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrVersionConflict("webhook event")
	}
	e.Version++
	e.UpdatedAt = now
	return nil
}
