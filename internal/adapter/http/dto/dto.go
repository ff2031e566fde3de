package dto

import (
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
)

// --- Payments ---

// AuthorizeRequest is the body of POST /api/v1/payments.
type AuthorizeRequest struct {
	Amount       int64  `json:"amount" binding:"required,gt=0"`
	CardToken    string `json:"card_token" binding:"required,max=128,safe_id"`
	CVV          string `json:"cvv" binding:"omitempty,numeric,min=3,max=4"`
	Installments int    `json:"installments" binding:"omitempty,min=1,max=12"`
}

// CaptureRequest is the body of POST /api/v1/payments/:id/capture.
// A zero amount captures the full authorized amount.
type CaptureRequest struct {
	Amount int64 `json:"amount" binding:"omitempty,gt=0"`
}

// VoidRequest is the body of POST /api/v1/payments/:id/void.
type VoidRequest struct {
	Reason string `json:"reason" binding:"max=255"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID               string  `json:"id"`
	GatewayCode      string  `json:"gateway_code"`
	GatewayReference string  `json:"gateway_reference,omitempty"`
	Amount           int64   `json:"amount"`
	Installments     int     `json:"installments"`
	CardTokenMasked  string  `json:"card_token_masked"`
	Status           string  `json:"status"`
	FailureReason    *string `json:"failure_reason,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// PaymentStatusResponse pairs the stored transaction with the gateway view.
type PaymentStatusResponse struct {
	TransactionResponse
	GatewayStatus string `json:"gateway_status,omitempty"`
	GatewayError  string `json:"gateway_error,omitempty"`
}

// NewTransactionResponse converts a domain transaction to its DTO.
func NewTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tx.ID.String(),
		GatewayCode:      tx.GatewayCode,
		GatewayReference: tx.GatewayReference,
		Amount:           tx.Amount,
		Installments:     tx.Installments,
		CardTokenMasked:  tx.CardTokenMasked,
		Status:           string(tx.Status),
		FailureReason:    tx.FailureReason,
		CreatedAt:        formatTime(tx.CreatedAt),
		UpdatedAt:        formatTime(tx.UpdatedAt),
	}
}

// NewPaymentStatusResponse converts a payment status to its DTO.
func NewPaymentStatusResponse(st *ports.PaymentStatus) PaymentStatusResponse {
	return PaymentStatusResponse{
		TransactionResponse: NewTransactionResponse(st.Transaction),
		GatewayStatus:       string(st.GatewayStatus),
		GatewayError:        st.GatewayError,
	}
}

// --- Tokens ---

type TokenizeRequest struct {
	Value string `json:"value" binding:"required,numeric,min=12,max=19"`
}

type TokenizeResponse struct {
	Token string `json:"token"`
}

type DetokenizeRequest struct {
	Token string `json:"token" binding:"required,max=128,safe_id"`
}

type DetokenizeResponse struct {
	Value string `json:"value"`
}

// --- Webhooks ---

// WebhookEventResponse exposes the delivery state of one event.
type WebhookEventResponse struct {
	ID            string  `json:"id"`
	TransactionID string  `json:"transaction_id"`
	EventType     string  `json:"event_type"`
	Status        string  `json:"status"`
	Attempts      int     `json:"attempts"`
	MaxAttempts   int     `json:"max_attempts"`
	ErrorMessage  *string `json:"error_message,omitempty"`
	LastAttemptAt *string `json:"last_attempt_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func NewWebhookEventResponse(ev *domain.WebhookEvent) WebhookEventResponse {
	resp := WebhookEventResponse{
		ID:            ev.ID.String(),
		TransactionID: ev.TransactionID.String(),
		EventType:     ev.EventType,
		Status:        string(ev.Status),
		Attempts:      ev.Attempts,
		MaxAttempts:   ev.MaxAttempts,
		ErrorMessage:  ev.ErrorMessage,
		CreatedAt:     formatTime(ev.CreatedAt),
	}
	if ev.LastAttemptAt != nil {
		s := formatTime(*ev.LastAttemptAt)
		resp.LastAttemptAt = &s
	}
	return resp
}

// --- Administration ---

// IssueKeyRequest is the body of POST /api/v1/admin/merchants/:id/api-keys.
// TTL uses Go duration syntax ("720h"); empty means the key never expires.
type IssueKeyRequest struct {
	TTL string `json:"ttl" binding:"omitempty,max=32"`
}

// IssuedKeyResponse carries the raw key. It is returned exactly once.
type IssuedKeyResponse struct {
	ID         string  `json:"id"`
	Key        string  `json:"key"`
	Prefix     string  `json:"prefix"`
	MerchantID string  `json:"merchant_id"`
	Status     string  `json:"status"`
	ExpiresAt  *string `json:"expires_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func NewIssuedKeyResponse(issued *ports.IssuedKey) IssuedKeyResponse {
	k := issued.Key
	resp := IssuedKeyResponse{
		ID:         k.ID.String(),
		Key:        issued.RawKey,
		Prefix:     k.Prefix,
		MerchantID: k.MerchantID.String(),
		Status:     string(k.Status),
		CreatedAt:  formatTime(k.CreatedAt),
	}
	if k.ExpiresAt != nil {
		s := formatTime(*k.ExpiresAt)
		resp.ExpiresAt = &s
	}
	return resp
}

type SetHealthRequest struct {
	Health string `json:"health" binding:"required,oneof=UP DOWN"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// ResetVolumeResponse reports how many rows a reset job touched.
type ResetVolumeResponse struct {
	Updated int64 `json:"updated"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
