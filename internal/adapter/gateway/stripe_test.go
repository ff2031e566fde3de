package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStripe(t *testing.T, handler http.HandlerFunc) *StripeAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStripeAdapter(StripeOptions{
		SecretKey:  "sk_test_123",
		BaseURL:    srv.URL,
		Currency:   "brl",
		HTTPClient: srv.Client(),
	}, zerolog.New(io.Discard))
}

func TestStripe_Authorize(t *testing.T) {
	a := newStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "5000", r.PostForm.Get("amount"))
		assert.Equal(t, "brl", r.PostForm.Get("currency"))
		assert.Equal(t, "pm_card_visa", r.PostForm.Get("payment_method"))
		assert.Equal(t, "manual", r.PostForm.Get("capture_method"))
		assert.Equal(t, "true", r.PostForm.Get("confirm"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"requires_capture"}`))
	})

	assert.Equal(t, "STRIPE", a.Code())

	res, err := a.Authorize(context.Background(), ports.AuthorizeRequest{Amount: 5000, CardToken: "pm_card_visa", Installments: 1})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", res.Reference)
	assert.Equal(t, domain.TransactionStatusAuthorized, res.Status)
}

func TestStripe_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   apperror.Kind
		reason string
	}{
		{"card declined", http.StatusPaymentRequired,
			`{"error":{"type":"card_error","code":"card_declined","decline_code":"insufficient_funds","message":"Your card has insufficient funds."}}`,
			apperror.KindPermanent, "insufficient_funds"},
		{"invalid request", http.StatusBadRequest,
			`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such PaymentMethod"}}`,
			apperror.KindPermanent, "No such PaymentMethod"},
		{"api error", http.StatusInternalServerError,
			`{"error":{"type":"api_error","message":"Something went wrong"}}`,
			apperror.KindTransient, ""},
		{"rate limited", http.StatusTooManyRequests,
			`{"error":{"type":"invalid_request_error","code":"rate_limit","message":"Too many requests"}}`,
			apperror.KindTransient, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStripe(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := a.Authorize(context.Background(), ports.AuthorizeRequest{Amount: 1, CardToken: "pm_x", Installments: 1})
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
			if tt.reason != "" {
				assert.ErrorContains(t, err, tt.reason)
			}
		})
	}
}

func TestStripe_UnexpectedStatusIsDecline(t *testing.T) {
	a := newStripe(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_2","object":"payment_intent","status":"requires_payment_method"}`))
	})

	_, err := a.Authorize(context.Background(), ports.AuthorizeRequest{Amount: 1, CardToken: "pm_x", Installments: 1})
	assert.True(t, apperror.Is(err, apperror.KindPermanent))
}

func TestStripe_CaptureVoidQuery(t *testing.T) {
	a := newStripe(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/payment_intents/pi_1/capture":
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "1200", r.PostForm.Get("amount_to_capture"))
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/v1/payment_intents/pi_1/cancel":
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"canceled"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/payment_intents/pi_1":
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"requires_capture"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"not found"}}`))
		}
	})
	ctx := context.Background()

	res, err := a.Capture(ctx, "pi_1", 1200)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCaptured, res.Status)

	res, err = a.Void(ctx, "pi_1", "customer request")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusVoided, res.Status)

	res, err = a.Query(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusAuthorized, res.Status)
}
