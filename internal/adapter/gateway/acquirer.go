// Package gateway holds the GatewayAdapter implementations.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AcquirerOptions configures one JSON-over-HTTP acquirer integration.
type AcquirerOptions struct {
	Code            string
	BaseURL         string
	MerchantKey     string
	MaxInstallments int // 0 means no limit
}

// AcquirerAdapter speaks the acquirer REST contract shared by CIELO, REDE
// and the PIX rail:
//
//	POST /v1/authorizations              -> authorize
//	POST /v1/authorizations/{id}/capture -> capture
//	POST /v1/authorizations/{id}/void    -> void
//	GET  /v1/authorizations/{id}         -> query
//
// 4xx responses are declines; 408, 429, 5xx and transport errors are
// transient.
type AcquirerAdapter struct {
	opts   AcquirerOptions
	client Doer
	log    zerolog.Logger
}

func NewAcquirerAdapter(opts AcquirerOptions, client Doer, log zerolog.Logger) *AcquirerAdapter {
	opts.Code = domain.NormalizeGatewayCode(opts.Code)
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &AcquirerAdapter{
		opts:   opts,
		client: client,
		log:    log.With().Str("gateway", opts.Code).Logger(),
	}
}

type acquirerAuthorizeRequest struct {
	Amount       int64  `json:"amount"`
	CardToken    string `json:"cardToken"`
	CVV          string `json:"cvv,omitempty"`
	Installments int    `json:"installments"`
}

type acquirerResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (a *AcquirerAdapter) Code() string { return a.opts.Code }

func (a *AcquirerAdapter) Authorize(ctx context.Context, req ports.AuthorizeRequest) (*ports.GatewayResult, error) {
	if a.opts.MaxInstallments > 0 && req.Installments > a.opts.MaxInstallments {
		return nil, apperror.GatewayDeclined(a.opts.Code, fmt.Sprintf("at most %d installments supported", a.opts.MaxInstallments))
	}
	return a.call(ctx, http.MethodPost, "/v1/authorizations", acquirerAuthorizeRequest{
		Amount:       req.Amount,
		CardToken:    req.CardToken,
		CVV:          req.CVV,
		Installments: req.Installments,
	})
}

func (a *AcquirerAdapter) Capture(ctx context.Context, reference string, amount int64) (*ports.GatewayResult, error) {
	return a.call(ctx, http.MethodPost, "/v1/authorizations/"+url.PathEscape(reference)+"/capture",
		map[string]int64{"amount": amount})
}

func (a *AcquirerAdapter) Void(ctx context.Context, reference string, reason string) (*ports.GatewayResult, error) {
	return a.call(ctx, http.MethodPost, "/v1/authorizations/"+url.PathEscape(reference)+"/void",
		map[string]string{"reason": reason})
}

func (a *AcquirerAdapter) Query(ctx context.Context, reference string) (*ports.GatewayResult, error) {
	return a.call(ctx, http.MethodGet, "/v1/authorizations/"+url.PathEscape(reference), nil)
}

func (a *AcquirerAdapter) call(ctx context.Context, method, path string, body any) (*ports.GatewayResult, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal %s request: %w", a.opts.Code, err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.opts.BaseURL+path, reader)
	if err != nil {
		return nil, apperror.GatewayDeclined(a.opts.Code, "invalid request: "+err.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Merchant-Key", a.opts.MerchantKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.GatewayTransient(a.opts.Code, fmt.Errorf("timeout: %w", err))
		}
		return nil, apperror.GatewayTransient(a.opts.Code, err)
	}
	defer resp.Body.Close()

	var out acquirerResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode < 300 {
			return nil, apperror.GatewayTransient(a.opts.Code, fmt.Errorf("malformed response: %w", err))
		}
	}

	switch {
	case resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= 500:
		return nil, apperror.GatewayTransient(a.opts.Code, fmt.Errorf("HTTP %d: %s", resp.StatusCode, out.Message))
	case resp.StatusCode >= 400:
		reason := out.Message
		if reason == "" {
			reason = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, apperror.GatewayDeclined(a.opts.Code, reason)
	}

	status, declined := mapAcquirerStatus(out.Status)
	if declined {
		reason := out.Message
		if reason == "" {
			reason = "declined"
		}
		return nil, apperror.GatewayDeclined(a.opts.Code, reason)
	}

	a.log.Debug().Str("method", method).Str("path", path).Str("reference", out.ID).Str("status", string(status)).Msg("acquirer call completed")
	return &ports.GatewayResult{Reference: out.ID, Status: status, Message: out.Message}, nil
}

func mapAcquirerStatus(s string) (status domain.TransactionStatus, declined bool) {
	switch strings.ToUpper(s) {
	case "CAPTURED", "SETTLED", "PAID":
		return domain.TransactionStatusCaptured, false
	case "VOIDED", "CANCELED", "CANCELLED", "REFUNDED":
		return domain.TransactionStatusVoided, false
	case "DECLINED", "DENIED", "FAILED":
		return domain.TransactionStatusFailed, true
	default:
		return domain.TransactionStatusAuthorized, false
	}
}
