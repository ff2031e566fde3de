package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyStatus is the lifecycle state of an API key.
type APIKeyStatus string

const (
	APIKeyStatusActive  APIKeyStatus = "ACTIVE"
	APIKeyStatusRevoked APIKeyStatus = "REVOKED"
	APIKeyStatusExpired APIKeyStatus = "EXPIRED"
)

// APIKey identifies a merchant on the merchant API. Only a keyed hash of the
// raw key is stored; rows are never hard-deleted.
type APIKey struct {
	ID         uuid.UUID    `json:"id"`
	KeyHash    string       `json:"-"`
	Prefix     string       `json:"prefix"`
	MerchantID uuid.UUID    `json:"merchant_id"`
	Status     APIKeyStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	RotatedAt  *time.Time   `json:"rotated_at,omitempty"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`
}

// IsExpired reports whether the key passed its expiry at now.
func (k *APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !now.Before(*k.ExpiresAt)
}

// IsUsable reports whether the key may authenticate a request at now.
func (k *APIKey) IsUsable(now time.Time) bool {
	return k.Status == APIKeyStatusActive && !k.IsExpired(now)
}
