package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New(KindValidation, "VAL_001", "Bad input", http.StatusBadRequest),
			expected: "[VAL_001] Bad input",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap(KindInternal, "SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(KindInternal, "SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New(KindNotFound, "NF_001", "x", 404).Unwrap())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("empty code"), KindValidation},
		{"not found", ErrNotFound("gateway"), KindNotFound},
		{"authorization", ErrInvalidAPIKey(), KindAuthorization},
		{"rate limit", ErrRateLimitExceeded(), KindRateLimit},
		{"transient gateway", GatewayTransient("CIELO", errors.New("503")), KindTransient},
		{"declined", GatewayDeclined("REDE", "insufficient funds"), KindPermanent},
		{"wrapped app error", fmt.Errorf("routing: %w", GatewayTransient("PIX", nil)), KindTransient},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindTransient},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(GatewayTransient("CIELO", nil)))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.False(t, IsRetryable(GatewayDeclined("CIELO", "stolen card")))
	assert.False(t, IsRetryable(nil))
}

func TestGatewayErrors(t *testing.T) {
	reasons := errors.Join(errors.New("CIELO: timeout"), errors.New("REDE: 503"))
	err := ErrNoAvailableGateway(reasons)

	assert.Equal(t, "GW_001", err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
	assert.Contains(t, err.Error(), "CIELO: timeout")
	assert.Contains(t, err.Error(), "REDE: 503")

	dup := ErrDuplicateGateway("CIELO")
	assert.Equal(t, KindValidation, dup.Kind)
	assert.Contains(t, dup.Message, "CIELO")
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", err.Code)
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "transient", KindTransient.String())
	assert.Equal(t, "permanent", KindPermanent.String())
	assert.Equal(t, "internal", Kind(99).String())
}

func TestWebhookErrors(t *testing.T) {
	err := WebhookDeliveryFailed(errors.New("HTTP 500"))
	assert.Equal(t, "WH_001", err.Code)
	assert.True(t, IsRetryable(err))

	noURL := ErrWebhookNoURL()
	assert.Equal(t, KindPermanent, noURL.Kind)
	assert.False(t, IsRetryable(noURL))
}
