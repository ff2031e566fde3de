package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MerchantStatus represents the state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive      MerchantStatus = "ACTIVE"
	MerchantStatusSuspended   MerchantStatus = "SUSPENDED"
	MerchantStatusDeactivated MerchantStatus = "DEACTIVATED"
)

// Plan is a merchant's subscription tier. It drives the rate-limit quota
// and the monthly processing cap.
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanBasic      Plan = "BASIC"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

// Monthly processing caps in minor currency units.
var monthlyCaps = map[Plan]int64{
	PlanFree:  1_000_000,
	PlanBasic: 10_000_000,
	PlanPro:   100_000_000,
}

// ParsePlan maps a case-insensitive plan name onto a known tier.
func ParsePlan(s string) (Plan, bool) {
	p := Plan(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PlanFree, PlanBasic, PlanPro, PlanEnterprise:
		return p, true
	}
	return "", false
}

// MonthlyCap returns the processing cap for the plan. limited is false for
// tiers without a cap.
func (p Plan) MonthlyCap() (limit int64, limited bool) {
	limit, limited = monthlyCaps[p]
	return limit, limited
}

// Merchant represents a registered merchant in the system.
type Merchant struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Plan          Plan           `json:"plan"`
	Status        MerchantStatus `json:"status"`
	MonthlyVolume int64          `json:"monthly_volume"`
	WebhookURL    *string        `json:"webhook_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// IsActive returns true if the merchant account is active.
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// HasWebhook reports whether the merchant configured a notification URL.
func (m *Merchant) HasWebhook() bool {
	return m.WebhookURL != nil && strings.TrimSpace(*m.WebhookURL) != ""
}
