package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WebhookStatus represents the delivery state of a webhook event.
type WebhookStatus string

const (
	WebhookStatusPending WebhookStatus = "PENDING"
	WebhookStatusSuccess WebhookStatus = "SUCCESS"
	WebhookStatusFailed  WebhookStatus = "FAILED"
)

// MaxWebhookAttempts bounds delivery attempts per event.
const MaxWebhookAttempts = 5

// WebhookEvent is one outcome notification owed to a merchant.
// Version increments on every write and guards concurrent transitions.
type WebhookEvent struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	MerchantID    uuid.UUID       `json:"merchant_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	Status        WebhookStatus   `json:"status"`
	Attempts      int             `json:"attempts"`
	MaxAttempts   int             `json:"max_attempts"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	Version       int64           `json:"-"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsTerminal reports whether the event reached SUCCESS or FAILED.
func (e *WebhookEvent) IsTerminal() bool {
	return e.Status == WebhookStatusSuccess || e.Status == WebhookStatusFailed
}

// DeliveryMessage is the queue payload for one delivery attempt.
type DeliveryMessage struct {
	WebhookEventID uuid.UUID `json:"webhookEventId"`
	AttemptNumber  int       `json:"attemptNumber"`
}

// ExhaustedMessage is the errorMessage recorded when delivery gives up.
func ExhaustedMessage(attempts int, lastErr string) string {
	if lastErr == "" {
		return fmt.Sprintf("delivery failed after %d attempts", attempts)
	}
	return fmt.Sprintf("delivery failed after %d attempts: %s", attempts, lastErr)
}

// Webhook event types sent to merchants.
const (
	WebhookEventAuthorized = "transaction.authorized"
	WebhookEventCaptured   = "transaction.captured"
	WebhookEventVoided     = "transaction.voided"
	WebhookEventFailed     = "transaction.failed"
)

// WebhookEventTypeFor maps a transaction status onto its notification type.
func WebhookEventTypeFor(status TransactionStatus) string {
	switch status {
	case TransactionStatusCaptured:
		return WebhookEventCaptured
	case TransactionStatusVoided:
		return WebhookEventVoided
	case TransactionStatusFailed:
		return WebhookEventFailed
	default:
		return WebhookEventAuthorized
	}
}
