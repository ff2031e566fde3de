package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"

	"github.com/rs/zerolog"
)

// Headers sent with every webhook delivery.
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookEventID   = "X-Webhook-Event-Id"
	HeaderWebhookEventType = "X-Webhook-Event-Type"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPNotifier implements ports.WebhookNotifier with a signed JSON POST.
type HTTPNotifier struct {
	client HTTPClient
	sigSvc ports.SignatureService
	secret string
	log    zerolog.Logger
}

// NewHTTPNotifier creates a new HTTPNotifier. The client's own timeout bounds
// each delivery call.
func NewHTTPNotifier(client HTTPClient, sigSvc ports.SignatureService, secret string, log zerolog.Logger) *HTTPNotifier {
	return &HTTPNotifier{client: client, sigSvc: sigSvc, secret: secret, log: log}
}

// Deliver POSTs the event payload to url. Any non-2xx answer or transport
// error is a retryable failure; a missing url is permanent.
func (n *HTTPNotifier) Deliver(ctx context.Context, url string, event *domain.WebhookEvent) error {
	if url == "" {
		return apperror.ErrWebhookNoURL()
	}

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	signature := n.sigSvc.Sign(n.secret, SigningPayload(event.ID.String(), ts, event.Payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(event.Payload))
	if err != nil {
		return apperror.ErrWebhookInvalidURL(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderWebhookSignature, signature)
	req.Header.Set(HeaderWebhookEventID, event.ID.String())
	req.Header.Set(HeaderWebhookEventType, event.EventType)
	req.Header.Set(HeaderWebhookTimestamp, ts)

	resp, err := n.client.Do(req)
	if err != nil {
		return apperror.WebhookDeliveryFailed(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperror.WebhookDeliveryFailed(fmt.Errorf("HTTP %d", resp.StatusCode))
	}
	n.log.Debug().Str("event_id", event.ID.String()).Int("status", resp.StatusCode).Msg("webhook: endpoint accepted delivery")
	return nil
}
