package ports

import (
	"context"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Infrastructure Ports ---

// RateLimitStore keeps fixed-window counters.
type RateLimitStore interface {
	// Increment bumps the counter for key, starting a window of the given
	// length when the key is new. It returns the new count and the time left
	// in the window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	// Peek reads the counter without mutating it.
	Peek(ctx context.Context, key string) (int64, time.Duration, error)
}

// EventLock is a short-lived mutual exclusion keyed by name.
type EventLock interface {
	// Acquire returns a token when the lock was taken, ok=false when held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	// Release frees the lock if it is still owned by token.
	Release(ctx context.Context, key string, token string) error
}

// DeliveryHandler processes one delivery message. A returned error leaves
// the message on the queue for redelivery.
type DeliveryHandler func(ctx context.Context, msg domain.DeliveryMessage) error

// DeliveryQueue carries webhook delivery attempts.
type DeliveryQueue interface {
	Publish(ctx context.Context, msg domain.DeliveryMessage) error
	// PublishRetry makes msg visible on the primary queue after delay.
	PublishRetry(ctx context.Context, msg domain.DeliveryMessage, delay time.Duration) error
	// Consume blocks, feeding primary queue messages to handler until ctx ends.
	Consume(ctx context.Context, handler DeliveryHandler) error
	// ConsumeDeadLetters blocks, feeding dead-lettered messages to handler.
	ConsumeDeadLetters(ctx context.Context, handler DeliveryHandler) error
}

// EventPublisher ships audit events to the security-events stream.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.AuditEvent) error
	Close() error
}

// VaultEntry is the secret stored behind a token reference.
type VaultEntry struct {
	MerchantID uuid.UUID `json:"merchant_id"`
	Value      string    `json:"value"`
}

// TokenVault stores sensitive values in an external secret manager.
type TokenVault interface {
	Store(ctx context.Context, reference string, entry VaultEntry) error
	// Load returns (nil, nil) when the reference does not exist.
	Load(ctx context.Context, reference string) (*VaultEntry, error)
}

// Metric names emitted by the core.
const (
	MetricRateLimiterStoreError = "RateLimiterStoreError"
	MetricRateLimitExceeded     = "RateLimitExceeded"
	MetricGatewayFailover       = "GatewayFailover"
	MetricNoAvailableGateway    = "NoAvailableGateway"
	MetricWebhookDelivered      = "WebhookDelivered"
	MetricWebhookFailed         = "WebhookFailed"
	MetricWebhookDeadLettered   = "WebhookDeadLettered"
	MetricAuditPublishFailed    = "AuditPublishFailed"
)

// Metrics records operator-facing counters. Implementations never block.
type Metrics interface {
	Incr(name string, dims map[string]string)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService handles JWT tokens for operator endpoints.
type TokenService interface {
	Generate(subject string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// WebhookNotifier performs the outbound HTTP call for one delivery attempt.
// A KindPermanent error means retrying cannot help.
type WebhookNotifier interface {
	Deliver(ctx context.Context, url string, event *domain.WebhookEvent) error
}

// --- Service Ports (Business Logic) ---

// RateLimitDecision is the outcome of one counted request.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetIn   int64 // seconds
}

// RateLimiter throttles requests per API key in fixed windows.
type RateLimiter interface {
	LimitForPlan(plan domain.Plan) int64
	IsAllowed(ctx context.Context, apiKey string, quota int64) bool
	Remaining(ctx context.Context, apiKey string, quota int64) int64
	ResetIn(ctx context.Context, apiKey string) int64
	// Check counts one request and returns the decision with the header
	// values from the same counter read.
	Check(ctx context.Context, apiKey string, quota int64) RateLimitDecision
}

// AuditTrail builds and emits tamper-evident audit events. It never fails
// the caller.
type AuditTrail interface {
	Record(ctx context.Context, eventType domain.AuditEventType, merchantID string, data map[string]string) *domain.AuditEvent
	Emit(ctx context.Context, event *domain.AuditEvent)
	// Log records and emits in one call.
	Log(ctx context.Context, eventType domain.AuditEventType, merchantID string, data map[string]string)
}

// WebhookService is the producer and query side of webhook delivery.
type WebhookService interface {
	// Notify creates a delivery event for tx and enqueues the first attempt.
	// Failures are logged, never returned.
	Notify(ctx context.Context, tx *domain.Transaction)
	GetEvent(ctx context.Context, merchantID uuid.UUID, id uuid.UUID) (*domain.WebhookEvent, error)
}

// PaymentService orchestrates payment operations across gateways.
type PaymentService interface {
	Authorize(ctx context.Context, req AuthorizeCommand) (*domain.Transaction, error)
	Capture(ctx context.Context, merchantID uuid.UUID, txID uuid.UUID, amount int64) (*domain.Transaction, error)
	Void(ctx context.Context, merchantID uuid.UUID, txID uuid.UUID, reason string) (*domain.Transaction, error)
	Query(ctx context.Context, merchantID uuid.UUID, txID uuid.UUID) (*PaymentStatus, error)
}

// AuthorizeCommand holds validated input for an authorization.
type AuthorizeCommand struct {
	MerchantID   uuid.UUID
	Amount       int64
	CardToken    string
	CVV          string
	Installments int
}

// PaymentStatus pairs the stored transaction with the gateway's live view.
type PaymentStatus struct {
	Transaction   *domain.Transaction
	GatewayStatus domain.TransactionStatus
	GatewayError  string
}

// APIKeyService manages the API key lifecycle and authenticates requests.
type APIKeyService interface {
	Issue(ctx context.Context, merchantID uuid.UUID, ttl time.Duration) (*IssuedKey, error)
	Rotate(ctx context.Context, merchantID uuid.UUID, keyID uuid.UUID) (*IssuedKey, error)
	Revoke(ctx context.Context, merchantID uuid.UUID, keyID uuid.UUID) error
	Authenticate(ctx context.Context, rawKey string) (*Principal, error)
	ResolvePlan(ctx context.Context, rawKey string) domain.Plan
	HashKey(rawKey string) string
}

// IssuedKey holds a freshly issued key. RawKey is shown only once.
type IssuedKey struct {
	Key    *domain.APIKey
	RawKey string
}

// Principal is the authenticated caller of the merchant API.
type Principal struct {
	Key      *domain.APIKey
	Merchant *domain.Merchant
}

// TokenizationService swaps card values for opaque vault references.
type TokenizationService interface {
	Tokenize(ctx context.Context, merchantID uuid.UUID, value string) (string, error)
	Detokenize(ctx context.Context, merchantID uuid.UUID, token string) (string, error)
}

// GatewayAdminService backs the operator endpoints.
type GatewayAdminService interface {
	ListGateways(ctx context.Context) ([]GatewayView, error)
	SetHealth(ctx context.Context, code string, health domain.HealthStatus) error
	SetStatus(ctx context.Context, code string, status domain.GatewayStatus) error
	ResetDailyVolume(ctx context.Context) (int64, error)
	ResetMonthlyVolume(ctx context.Context) (int64, error)
}

// GatewayView joins stored gateway state with registry presence.
type GatewayView struct {
	domain.Gateway
	Registered bool `json:"registered"`
}
