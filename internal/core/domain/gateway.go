package domain

import (
	"sort"
	"strings"
	"time"
)

// GatewayStatus is the administrative state of a gateway.
type GatewayStatus string

const (
	GatewayStatusActive   GatewayStatus = "ACTIVE"
	GatewayStatusInactive GatewayStatus = "INACTIVE"
)

// HealthStatus is set by the external health checker.
type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

// SuccessRateAlpha weights the latest outcome in the success rate average.
const SuccessRateAlpha = 0.1

// Gateway is the persisted routing state of one acquirer or payment rail.
type Gateway struct {
	Code         string        `json:"code"`
	Status       GatewayStatus `json:"status"`
	HealthStatus HealthStatus  `json:"health_status"`
	Priority     int           `json:"priority"` // lower = more preferred
	SuccessRate  float64       `json:"success_rate"`
	DailyVolume  int64         `json:"daily_volume"`
	DailyLimit   int64         `json:"daily_limit"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NormalizeGatewayCode returns the canonical registry form of a code.
func NormalizeGatewayCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSelectable reports whether the gateway may take new traffic:
// ACTIVE, UP and below its daily limit.
func (g *Gateway) IsSelectable() bool {
	return g.Status == GatewayStatusActive &&
		g.HealthStatus == HealthStatusUp &&
		g.DailyVolume < g.DailyLimit
}

// NextSuccessRate folds one outcome into the moving average.
func NextSuccessRate(current float64, success bool) float64 {
	sample := 0.0
	if success {
		sample = 1.0
	}
	next := (1-SuccessRateAlpha)*current + SuccessRateAlpha*sample
	switch {
	case next < 0:
		return 0
	case next > 1:
		return 1
	}
	return next
}

// SortForRouting orders gateways by priority ascending, then success rate
// descending. Ties keep a deterministic order by code.
func SortForRouting(gateways []Gateway) {
	sort.SliceStable(gateways, func(i, j int) bool {
		a, b := gateways[i], gateways[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.SuccessRate != b.SuccessRate {
			return a.SuccessRate > b.SuccessRate
		}
		return a.Code < b.Code
	})
}
