package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so callers can branch on the failure category
// instead of on concrete error types.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindRateLimit
	KindTransient
	KindPermanent
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindRateLimit:
		return "rate_limit"
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Kind       Kind   `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kind,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Kind:       kind,
		Err:        err,
	}
}

// KindOf reports the category of err. Deadline and cancellation errors are
// transient; anything that is not an *AppError is internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransient
	}
	return KindInternal
}

// IsRetryable reports whether the operation that produced err may succeed
// when attempted again (possibly against a different gateway).
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransient
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ---- Validation (VAL) ----

// Validation returns a generic validation error.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New(KindConflict, "VAL_003", fmt.Sprintf("Cannot move transaction from %s to %s", from, to), http.StatusConflict)
}

// ---- Lookup (NF) ----

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication & Authorization (SEC) ----

func ErrMissingAPIKey() *AppError {
	return New(KindAuthorization, "SEC_001", "Missing API key", http.StatusUnauthorized)
}

func ErrInvalidAPIKey() *AppError {
	return New(KindAuthorization, "SEC_002", "Invalid API key", http.StatusUnauthorized)
}

func ErrAPIKeyRevoked() *AppError {
	return New(KindAuthorization, "SEC_003", "API key revoked or expired", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New(KindAuthorization, "SEC_004", "Merchant account is suspended", http.StatusForbidden)
}

func ErrForbidden(message string) *AppError {
	return New(KindAuthorization, "SEC_005", message, http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(KindAuthorization, "SEC_006", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimit, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrMonthlyLimitExceeded() *AppError {
	return New(KindPermanent, "RATE_002", "Monthly processing limit exceeded for plan", http.StatusUnprocessableEntity)
}

// ---- Gateways (GW) ----

// ErrNoAvailableGateway is surfaced when every routing candidate failed.
// reasons are kept in the wrapped error for logs, not shown to clients.
func ErrNoAvailableGateway(reasons error) *AppError {
	return Wrap(KindTransient, "GW_001", "No available gateway", http.StatusServiceUnavailable, reasons)
}

func ErrDuplicateGateway(code string) *AppError {
	return New(KindValidation, "GW_002", fmt.Sprintf("Gateway %s registered more than once", code), http.StatusInternalServerError)
}

// GatewayTransient marks a retryable gateway failure (timeouts, 5xx, network).
func GatewayTransient(code string, err error) *AppError {
	return Wrap(KindTransient, "GW_003", fmt.Sprintf("Gateway %s temporarily unavailable", code), http.StatusBadGateway, err)
}

// GatewayDeclined marks a non-retryable gateway failure.
func GatewayDeclined(code string, reason string) *AppError {
	return New(KindPermanent, "GW_004", fmt.Sprintf("Gateway %s declined: %s", code, reason), http.StatusPaymentRequired)
}

// ---- Webhooks (WH) ----

// WebhookDeliveryFailed marks a failed delivery attempt that may be retried.
func WebhookDeliveryFailed(err error) *AppError {
	return Wrap(KindTransient, "WH_001", "Webhook delivery failed", http.StatusBadGateway, err)
}

func ErrWebhookNoURL() *AppError {
	return New(KindPermanent, "WH_002", "Merchant has no webhook URL", http.StatusUnprocessableEntity)
}

func ErrWebhookInvalidURL(err error) *AppError {
	return Wrap(KindPermanent, "WH_003", "Merchant webhook URL is invalid", http.StatusUnprocessableEntity, err)
}

// ---- API keys (KEY) ----

func ErrKeyGeneration(err error) *AppError {
	return Wrap(KindInternal, "KEY_001", "Failed to generate API key", http.StatusInternalServerError, err)
}

// ---- Tokenization (TOK) ----

func ErrVaultFailure(err error) *AppError {
	return Wrap(KindTransient, "TOK_001", "Token vault unavailable", http.StatusServiceUnavailable, err)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// ErrVersionConflict reports a lost optimistic-concurrency race.
func ErrVersionConflict(entity string) *AppError {
	return New(KindConflict, "SYS_002", fmt.Sprintf("%s was modified concurrently", entity), http.StatusConflict)
}

// InternalError wraps an internal error as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
