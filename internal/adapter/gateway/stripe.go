package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
)

// StripeCode is the gateway code served by StripeAdapter.
const StripeCode = "STRIPE"

// StripeOptions configures the Stripe integration. An empty BaseURL targets
// the Stripe production API.
type StripeOptions struct {
	SecretKey  string
	BaseURL    string
	Currency   string
	HTTPClient *http.Client
}

// StripeAdapter authorizes through manual-capture PaymentIntents. Card
// tokens are passed as PaymentMethod ids.
type StripeAdapter struct {
	api      *client.API
	currency string
	log      zerolog.Logger
}

func NewStripeAdapter(opts StripeOptions, log zerolog.Logger) *StripeAdapter {
	cfg := &stripe.BackendConfig{
		// Failover belongs to the router, not the SDK.
		MaxNetworkRetries: stripe.Int64(0),
		HTTPClient:        opts.HTTPClient,
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if opts.BaseURL != "" {
		cfg.URL = stripe.String(opts.BaseURL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)

	currency := opts.Currency
	if currency == "" {
		currency = "brl"
	}

	return &StripeAdapter{
		api:      client.New(opts.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}),
		currency: currency,
		log:      log.With().Str("gateway", StripeCode).Logger(),
	}
}

func (s *StripeAdapter) Code() string { return StripeCode }

func (s *StripeAdapter) Authorize(ctx context.Context, req ports.AuthorizeRequest) (*ports.GatewayResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(s.currency),
		PaymentMethod:      stripe.String(req.CardToken),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:            stripe.Bool(true),
	}
	if req.Installments > 1 {
		params.PaymentMethodOptions = &stripe.PaymentIntentPaymentMethodOptionsParams{
			Card: &stripe.PaymentIntentPaymentMethodOptionsCardParams{
				Installments: &stripe.PaymentIntentPaymentMethodOptionsCardInstallmentsParams{
					Enabled: stripe.Bool(true),
				},
			},
		}
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return s.result(pi)
}

func (s *StripeAdapter) Capture(ctx context.Context, reference string, amount int64) (*ports.GatewayResult, error) {
	params := &stripe.PaymentIntentCaptureParams{AmountToCapture: stripe.Int64(amount)}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.Capture(reference, params)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return s.result(pi)
}

func (s *StripeAdapter) Void(ctx context.Context, reference string, reason string) (*ports.GatewayResult, error) {
	params := &stripe.PaymentIntentCancelParams{
		CancellationReason: stripe.String(string(stripe.PaymentIntentCancellationReasonRequestedByCustomer)),
	}
	params.Context = ctx
	s.log.Debug().Str("reference", reference).Str("reason", reason).Msg("cancelling payment intent")

	pi, err := s.api.PaymentIntents.Cancel(reference, params)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return s.result(pi)
}

func (s *StripeAdapter) Query(ctx context.Context, reference string) (*ports.GatewayResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.Get(reference, params)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return s.result(pi)
}

func (s *StripeAdapter) result(pi *stripe.PaymentIntent) (*ports.GatewayResult, error) {
	switch pi.Status {
	case stripe.PaymentIntentStatusRequiresCapture, stripe.PaymentIntentStatusProcessing:
		return &ports.GatewayResult{Reference: pi.ID, Status: domain.TransactionStatusAuthorized}, nil
	case stripe.PaymentIntentStatusSucceeded:
		return &ports.GatewayResult{Reference: pi.ID, Status: domain.TransactionStatusCaptured}, nil
	case stripe.PaymentIntentStatusCanceled:
		return &ports.GatewayResult{Reference: pi.ID, Status: domain.TransactionStatusVoided}, nil
	default:
		return nil, apperror.GatewayDeclined(StripeCode, fmt.Sprintf("payment intent %s is %s", pi.ID, pi.Status))
	}
}

// mapError classifies Stripe failures: card and request errors are
// declines, API errors, rate limits and network failures are transient.
func (s *StripeAdapter) mapError(ctx context.Context, err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		if ctx.Err() != nil {
			return apperror.GatewayTransient(StripeCode, fmt.Errorf("timeout: %w", ctx.Err()))
		}
		return apperror.GatewayTransient(StripeCode, err)
	}

	s.log.Debug().
		Int("http_status", stripeErr.HTTPStatusCode).
		Str("type", string(stripeErr.Type)).
		Str("code", string(stripeErr.Code)).
		Msg("stripe call failed")

	if stripeErr.HTTPStatusCode == http.StatusTooManyRequests ||
		stripeErr.HTTPStatusCode >= 500 ||
		stripeErr.Type == stripe.ErrorTypeAPI {
		return apperror.GatewayTransient(StripeCode, err)
	}

	reason := stripeErr.Msg
	if stripeErr.DeclineCode != "" {
		reason = string(stripeErr.DeclineCode)
	}
	if reason == "" {
		reason = string(stripeErr.Code)
	}
	return apperror.GatewayDeclined(StripeCode, reason)
}
