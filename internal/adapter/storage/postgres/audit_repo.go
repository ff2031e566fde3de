package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"payment-orchestrator/internal/core/domain"
)

// AuditEventRepo appends audit events to the audit_events table. It
// implements ports.EventPublisher for deployments without a broker.
type AuditEventRepo struct {
	pool Pool
}

// NewAuditEventRepo creates a PostgreSQL-backed audit sink.
func NewAuditEventRepo(pool Pool) *AuditEventRepo {
	return &AuditEventRepo{pool: pool}
}

// Publish inserts the event. Duplicate ids are ignored so redelivered
// events stay append-only.
func (r *AuditEventRepo) Publish(ctx context.Context, e *domain.AuditEvent) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("marshal audit data: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO audit_events (event_id, occurred_at, event_type, merchant_id, data, checksum)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (event_id) DO NOTHING`,
		e.ID, e.Timestamp, e.EventType, e.MerchantID, data, e.Checksum,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// Close is a no-op; the pool is owned by the caller.
func (r *AuditEventRepo) Close() error {
	return nil
}
