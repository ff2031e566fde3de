package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// AuditEventType is the closed set of security-relevant events.
type AuditEventType string

const (
	AuditTokenization               AuditEventType = "TOKENIZATION"
	AuditTokenizationFailed         AuditEventType = "TOKENIZATION_FAILED"
	AuditDetokenization             AuditEventType = "DETOKENIZATION"
	AuditDetokenizationFailed       AuditEventType = "DETOKENIZATION_FAILED"
	AuditUnauthorizedDetokenization AuditEventType = "UNAUTHORIZED_DETOKENIZATION"
	AuditUnauthorizedAccess         AuditEventType = "UNAUTHORIZED_ACCESS"
	AuditRateLimitExceeded          AuditEventType = "RATE_LIMIT_EXCEEDED"
	AuditAPIKeyCreated              AuditEventType = "API_KEY_CREATED"
	AuditAPIKeyRotated              AuditEventType = "API_KEY_ROTATED"
	AuditAPIKeyRevoked              AuditEventType = "API_KEY_REVOKED"
	AuditAPIKeyExpired              AuditEventType = "API_KEY_EXPIRED"
	AuditGatewayRouted              AuditEventType = "GATEWAY_ROUTED"
	AuditGatewayFailover            AuditEventType = "GATEWAY_FAILOVER"
	AuditGatewayUnavailable         AuditEventType = "GATEWAY_UNAVAILABLE"
	AuditPaymentCaptured            AuditEventType = "PAYMENT_CAPTURED"
	AuditPaymentVoided              AuditEventType = "PAYMENT_VOIDED"
	AuditWebhookFailed              AuditEventType = "WEBHOOK_FAILED"
)

// Valid reports whether t belongs to the closed set.
func (t AuditEventType) Valid() bool {
	switch t {
	case AuditTokenization, AuditTokenizationFailed, AuditDetokenization,
		AuditDetokenizationFailed, AuditUnauthorizedDetokenization,
		AuditUnauthorizedAccess, AuditRateLimitExceeded, AuditAPIKeyCreated,
		AuditAPIKeyRotated, AuditAPIKeyRevoked, AuditAPIKeyExpired,
		AuditGatewayRouted, AuditGatewayFailover, AuditGatewayUnavailable,
		AuditPaymentCaptured, AuditPaymentVoided, AuditWebhookFailed:
		return true
	}
	return false
}

// HighSeverity reports events that must be logged as warnings.
func (t AuditEventType) HighSeverity() bool {
	switch t {
	case AuditUnauthorizedDetokenization, AuditUnauthorizedAccess,
		AuditRateLimitExceeded, AuditGatewayUnavailable:
		return true
	}
	return false
}

const (
	// UnknownMerchant stands in for the merchant of unauthenticated events.
	UnknownMerchant = "UNKNOWN"
	// ChecksumAlgorithm prefixes every audit checksum.
	ChecksumAlgorithm = "SHA-256"
	// MaskMarker replaces the hidden part of a masked value.
	MaskMarker = "****"
)

// AuditEvent is an immutable, tamper-evident audit record.
type AuditEvent struct {
	ID         string            `json:"eventId"`
	Timestamp  time.Time         `json:"timestamp"`
	EventType  AuditEventType    `json:"eventType"`
	MerchantID string            `json:"merchantId"`
	Data       map[string]string `json:"data"`
	Checksum   string            `json:"checksum"`
}

// ComputeChecksum hashes id, timestamp, type, merchant and the serialized
// data map. encoding/json sorts map keys, which makes the data canonical.
func (e *AuditEvent) ComputeChecksum() string {
	data := e.Data
	if data == nil {
		data = map[string]string{}
	}
	serialized, _ := json.Marshal(data)

	var b strings.Builder
	b.WriteString(e.ID)
	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339Nano))
	b.WriteString(string(e.EventType))
	b.WriteString(e.MerchantID)
	b.Write(serialized)

	sum := sha256.Sum256([]byte(b.String()))
	return ChecksumAlgorithm + ":" + hex.EncodeToString(sum[:])
}

// Verify recomputes the checksum and compares it with the stored one.
func (e *AuditEvent) Verify() bool {
	return e.Checksum != "" && e.Checksum == e.ComputeChecksum()
}

// MaskToken keeps the first 8 and last 4 characters of a token-like value.
// Values under 12 characters are masked fully, since the kept prefix and
// suffix would otherwise overlap and reveal the whole value. Counting is by
// rune.
func MaskToken(v string) string {
	r := []rune(v)
	if len(r) < 12 {
		return MaskMarker
	}
	return string(r[:8]) + MaskMarker + string(r[len(r)-4:])
}

// MaskKey keeps the first 12 characters of a key-like value.
func MaskKey(v string) string {
	r := []rune(v)
	if len(r) < 12 {
		return MaskMarker
	}
	return string(r[:12]) + MaskMarker
}
