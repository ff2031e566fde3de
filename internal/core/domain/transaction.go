package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusAuthorized TransactionStatus = "AUTHORIZED"
	TransactionStatusCaptured   TransactionStatus = "CAPTURED"
	TransactionStatusVoided     TransactionStatus = "VOIDED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
)

var transitions = map[TransactionStatus][]TransactionStatus{
	TransactionStatusAuthorized: {TransactionStatusCaptured, TransactionStatusVoided},
	TransactionStatusCaptured:   {TransactionStatusVoided},
}

// CanTransitionTo reports whether moving from s to next is a forward step.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transaction is one payment routed through a gateway. Amount is immutable
// once authorized.
type Transaction struct {
	ID               uuid.UUID         `json:"id"`
	MerchantID       uuid.UUID         `json:"merchant_id"`
	GatewayCode      string            `json:"gateway_code"`
	GatewayReference string            `json:"gateway_reference,omitempty"`
	Amount           int64             `json:"amount"` // minor units
	Installments     int               `json:"installments"`
	CardTokenMasked  string            `json:"card_token_masked"`
	Status           TransactionStatus `json:"status"`
	FailureReason    *string           `json:"failure_reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// IsTerminal returns true if no further transition is possible.
func (t *Transaction) IsTerminal() bool {
	return len(transitions[t.Status]) == 0
}
