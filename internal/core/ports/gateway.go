package ports

import (
	"context"

	"payment-orchestrator/internal/core/domain"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// AuthorizeRequest is the gateway-neutral authorization input.
type AuthorizeRequest struct {
	Amount       int64
	CardToken    string
	CVV          string
	Installments int
}

// GatewayResult is what a gateway reports for one operation.
type GatewayResult struct {
	Reference string                   // the gateway's own transaction id
	Status    domain.TransactionStatus // status as seen by the gateway
	Message   string
}

// GatewayAdapter is implemented once per acquirer or payment rail.
// Failures are *apperror.AppError values of KindTransient (retryable,
// including timeouts) or KindPermanent.
type GatewayAdapter interface {
	Code() string
	Authorize(ctx context.Context, req AuthorizeRequest) (*GatewayResult, error)
	Capture(ctx context.Context, reference string, amount int64) (*GatewayResult, error)
	Void(ctx context.Context, reference string, reason string) (*GatewayResult, error)
	Query(ctx context.Context, reference string) (*GatewayResult, error)
}

// RoutingResult describes the gateway that handled an authorization.
type RoutingResult struct {
	GatewayCode string
	Result      *GatewayResult
	Attempts    int
}

// GatewayRouter holds the adapter registry and the failover policy.
type GatewayRouter interface {
	GetAdapter(code string) (GatewayAdapter, error)
	HasAdapter(code string) bool
	ListSupportedCodes() []string
	CountAdapters() int
	// SelectForRouting authorizes against the eligible gateways in routing
	// order. On a permanent decline the returned result names the declining
	// gateway alongside the error.
	SelectForRouting(ctx context.Context, req AuthorizeRequest) (*RoutingResult, error)
}
