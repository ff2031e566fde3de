package ports

import (
	"context"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// Lookups return (nil, nil) when the row does not exist.

// GatewayRepository persists gateway routing state.
type GatewayRepository interface {
	ListAll(ctx context.Context) ([]domain.Gateway, error)
	// ListSelectable returns ACTIVE, UP gateways still below their daily limit.
	ListSelectable(ctx context.Context) ([]domain.Gateway, error)
	GetByCode(ctx context.Context, code string) (*domain.Gateway, error)
	// ReserveVolume adds amount to the daily volume only if the result stays
	// within the daily limit. It reports whether the reservation was taken.
	ReserveVolume(ctx context.Context, code string, amount int64) (bool, error)
	ReleaseVolume(ctx context.Context, code string, amount int64) error
	RecordOutcome(ctx context.Context, code string, success bool) error
	UpdateHealth(ctx context.Context, code string, health domain.HealthStatus) (bool, error)
	UpdateStatus(ctx context.Context, code string, status domain.GatewayStatus) (bool, error)
	ResetDailyVolume(ctx context.Context) (int64, error)
}

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	// ReserveMonthlyVolume adds amount to the monthly volume if the result
	// stays within limit. A limit <= 0 means uncapped.
	ReserveMonthlyVolume(ctx context.Context, id uuid.UUID, amount int64, limit int64) (bool, error)
	ReleaseMonthlyVolume(ctx context.Context, id uuid.UUID, amount int64) error
	ResetMonthlyVolume(ctx context.Context) (int64, error)
}

// APIKeyRepository persists API keys. Methods accepting pgx.Tx run inside
// the caller's transaction.
type APIKeyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, key *domain.APIKey) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error)
	GetByHash(ctx context.Context, hash string) (*domain.APIKey, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.APIKeyStatus, rotatedAt *time.Time) error
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// UpdateStatus moves a transaction from one status to another. It
	// reports false when the stored status no longer equals from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.TransactionStatus) (bool, error)
}

// WebhookEventRepository persists webhook delivery state.
type WebhookEventRepository interface {
	Create(ctx context.Context, event *domain.WebhookEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookEvent, error)
	// Update writes status, attempts, error and last attempt time if the
	// stored version equals event.Version, then bumps event.Version.
	// A stale version yields apperror.ErrVersionConflict.
	Update(ctx context.Context, event *domain.WebhookEvent) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
