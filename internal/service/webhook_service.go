package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// errEventLocked asks the queue to redeliver a message whose event is being
// handled by another worker.
var errEventLocked = errors.New("webhook event is locked by another worker")

// WebhookPayload is the JSON body POSTed to the merchant webhook URL.
type WebhookPayload struct {
	EventType        string    `json:"event_type"`
	TransactionID    uuid.UUID `json:"transaction_id"`
	MerchantID       uuid.UUID `json:"merchant_id"`
	Status           string    `json:"status"`
	Amount           int64     `json:"amount"`
	Installments     int       `json:"installments"`
	GatewayCode      string    `json:"gateway_code"`
	GatewayReference string    `json:"gateway_reference,omitempty"`
	FailureReason    string    `json:"failure_reason,omitempty"`
	Timestamp        int64     `json:"timestamp"`
}

// WebhookEngineConfig holds the fixed retry policy.
type WebhookEngineConfig struct {
	MaxAttempts int
	RetryDelay  time.Duration
	LockTTL     time.Duration
}

// WebhookEngine is the webhook delivery state machine. Notify and GetEvent
// form the producer side (ports.WebhookService); HandleAttempt and
// HandleDeadLetter are queue consumers.
//
// Transitions on one event are serialized twice: a short Redis lock keeps
// concurrent workers apart, and every write is version-checked.
type WebhookEngine struct {
	events    ports.WebhookEventRepository
	merchants ports.MerchantRepository
	queue     ports.DeliveryQueue
	notifier  ports.WebhookNotifier
	lock      ports.EventLock
	audit     ports.AuditTrail
	metrics   ports.Metrics
	cfg       WebhookEngineConfig
	log       zerolog.Logger
}

// NewWebhookEngine creates a new WebhookEngine.
func NewWebhookEngine(
	events ports.WebhookEventRepository,
	merchants ports.MerchantRepository,
	queue ports.DeliveryQueue,
	notifier ports.WebhookNotifier,
	lock ports.EventLock,
	audit ports.AuditTrail,
	metrics ports.Metrics,
	cfg WebhookEngineConfig,
	log zerolog.Logger,
) *WebhookEngine {
	if cfg.MaxAttempts <= 0 || cfg.MaxAttempts > domain.MaxWebhookAttempts {
		cfg.MaxAttempts = domain.MaxWebhookAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Minute
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 30 * time.Second
	}
	return &WebhookEngine{
		events:    events,
		merchants: merchants,
		queue:     queue,
		notifier:  notifier,
		lock:      lock,
		audit:     audit,
		metrics:   metrics,
		cfg:       cfg,
		log:       log,
	}
}

// Notify creates a PENDING event for tx and enqueues attempt 1. Merchants
// without a webhook URL are skipped. Errors never reach the caller.
func (w *WebhookEngine) Notify(ctx context.Context, tx *domain.Transaction) {
	log := logger.For(ctx, w.log).With().Str("tx_id", tx.ID.String()).Logger()

	merchant, err := w.merchants.GetByID(ctx, tx.MerchantID)
	if err != nil {
		log.Error().Err(err).Msg("webhook: failed to fetch merchant")
		return
	}
	if merchant == nil || !merchant.HasWebhook() {
		log.Debug().Msg("webhook: no webhook URL configured, skipping")
		return
	}

	eventType := domain.WebhookEventTypeFor(tx.Status)
	payload := WebhookPayload{
		EventType:        eventType,
		TransactionID:    tx.ID,
		MerchantID:       tx.MerchantID,
		Status:           string(tx.Status),
		Amount:           tx.Amount,
		Installments:     tx.Installments,
		GatewayCode:      tx.GatewayCode,
		GatewayReference: tx.GatewayReference,
		Timestamp:        time.Now().Unix(),
	}
	if tx.FailureReason != nil {
		payload.FailureReason = *tx.FailureReason
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("webhook: failed to marshal payload")
		return
	}

	now := time.Now().UTC()
	event := &domain.WebhookEvent{
		ID:            uuid.New(),
		TransactionID: tx.ID,
		MerchantID:    tx.MerchantID,
		EventType:     eventType,
		Payload:       body,
		Status:        domain.WebhookStatusPending,
		MaxAttempts:   w.cfg.MaxAttempts,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := w.events.Create(ctx, event); err != nil {
		log.Error().Err(err).Msg("webhook: failed to persist event")
		return
	}

	msg := domain.DeliveryMessage{WebhookEventID: event.ID, AttemptNumber: 1}
	if err := w.queue.Publish(ctx, msg); err != nil {
		log.Error().Err(err).Str("event_id", event.ID.String()).Msg("webhook: failed to enqueue first attempt")
		return
	}
	log.Debug().Str("event_id", event.ID.String()).Str("event_type", eventType).Msg("webhook: enqueued")
}

// GetEvent returns an event owned by merchantID.
func (w *WebhookEngine) GetEvent(ctx context.Context, merchantID uuid.UUID, id uuid.UUID) (*domain.WebhookEvent, error) {
	event, err := w.events.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if event == nil || event.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("webhook event")
	}
	return event, nil
}

// HandleAttempt processes one delivery attempt from the primary queue.
// Returning an error leaves the message for redelivery.
func (w *WebhookEngine) HandleAttempt(ctx context.Context, msg domain.DeliveryMessage) error {
	return w.withEventLock(ctx, msg, func(event *domain.WebhookEvent, log zerolog.Logger) error {
		if msg.AttemptNumber <= event.Attempts {
			log.Debug().Int("recorded_attempts", event.Attempts).Msg("webhook: stale attempt, dropping")
			return nil
		}
		attempt := min(msg.AttemptNumber, w.cfg.MaxAttempts)

		deliverErr := w.deliver(ctx, event)
		now := time.Now().UTC()
		event.Attempts = attempt
		event.LastAttemptAt = &now

		if deliverErr == nil {
			event.Status = domain.WebhookStatusSuccess
			event.ErrorMessage = nil
			if err := w.events.Update(ctx, event); err != nil {
				return fmt.Errorf("persist delivered event: %w", err)
			}
			w.metrics.Incr(ports.MetricWebhookDelivered, nil)
			log.Info().Int("attempt", attempt).Msg("webhook: delivered")
			return nil
		}

		if attempt >= w.cfg.MaxAttempts || apperror.Is(deliverErr, apperror.KindPermanent) {
			return w.fail(ctx, event, domain.ExhaustedMessage(attempt, deliverErr.Error()), "attempts", log)
		}

		// Schedule the next attempt before recording this one: if the write
		// fails, the next attempt still finds attempts < its number.
		next := domain.DeliveryMessage{WebhookEventID: event.ID, AttemptNumber: attempt + 1}
		if err := w.queue.PublishRetry(ctx, next, w.cfg.RetryDelay); err != nil {
			return fmt.Errorf("schedule retry: %w", err)
		}

		errMsg := deliverErr.Error()
		event.ErrorMessage = &errMsg
		if err := w.events.Update(ctx, event); err != nil {
			return fmt.Errorf("persist failed attempt: %w", err)
		}
		log.Warn().Err(deliverErr).Int("attempt", attempt).Dur("retry_in", w.cfg.RetryDelay).Msg("webhook: delivery failed, retry scheduled")
		return nil
	})
}

// HandleDeadLetter finalizes an event whose message was dead-lettered by
// the transport. It converges on the same FAILED state as attempt
// exhaustion; whichever path lands first wins.
func (w *WebhookEngine) HandleDeadLetter(ctx context.Context, msg domain.DeliveryMessage) error {
	return w.withEventLock(ctx, msg, func(event *domain.WebhookEvent, log zerolog.Logger) error {
		attempts := min(max(event.Attempts, msg.AttemptNumber), w.cfg.MaxAttempts)
		event.Attempts = attempts
		w.metrics.Incr(ports.MetricWebhookDeadLettered, nil)
		return w.fail(ctx, event, domain.ExhaustedMessage(attempts, "dead-lettered"), "dead_letter", log)
	})
}

// Run starts workers primary-queue consumers and one dead-letter consumer
// and blocks until ctx is cancelled.
func (w *WebhookEngine) Run(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	consume := func(name string, fn func(context.Context, ports.DeliveryHandler) error, h ports.DeliveryHandler) {
		defer wg.Done()
		if err := fn(ctx, h); err != nil && !errors.Is(err, context.Canceled) {
			w.log.Error().Err(err).Str("consumer", name).Msg("webhook consumer stopped")
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go consume("primary-"+strconv.Itoa(i), w.queue.Consume, w.HandleAttempt)
	}
	wg.Add(1)
	go consume("dead-letter", w.queue.ConsumeDeadLetters, w.HandleDeadLetter)

	w.log.Info().Int("workers", workers).Msg("webhook delivery workers started")
	wg.Wait()
	w.log.Info().Msg("webhook delivery workers stopped")
}

// withEventLock loads the event under its lock and runs fn unless the
// event is missing or already terminal.
func (w *WebhookEngine) withEventLock(ctx context.Context, msg domain.DeliveryMessage, fn func(*domain.WebhookEvent, zerolog.Logger) error) error {
	log := w.log.With().
		Str("event_id", msg.WebhookEventID.String()).
		Int("attempt_number", msg.AttemptNumber).
		Logger()

	key := "webhook:" + msg.WebhookEventID.String()
	token, ok, err := w.lock.Acquire(ctx, key, w.cfg.LockTTL)
	if err != nil {
		return fmt.Errorf("acquire event lock: %w", err)
	}
	if !ok {
		return errEventLocked
	}
	defer func() {
		if err := w.lock.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Warn().Err(err).Msg("webhook: failed to release event lock")
		}
	}()

	event, err := w.events.GetByID(ctx, msg.WebhookEventID)
	if err != nil {
		return fmt.Errorf("load webhook event: %w", err)
	}
	if event == nil {
		log.Warn().Msg("webhook: event not found, dropping message")
		return nil
	}
	if event.IsTerminal() {
		log.Debug().Str("status", string(event.Status)).Msg("webhook: event already terminal, ignoring")
		return nil
	}
	return fn(event, log)
}

func (w *WebhookEngine) deliver(ctx context.Context, event *domain.WebhookEvent) error {
	merchant, err := w.merchants.GetByID(ctx, event.MerchantID)
	if err != nil {
		return apperror.WebhookDeliveryFailed(fmt.Errorf("fetch merchant: %w", err))
	}
	if merchant == nil || !merchant.HasWebhook() {
		return apperror.ErrWebhookNoURL()
	}
	return w.notifier.Deliver(ctx, *merchant.WebhookURL, event)
}

func (w *WebhookEngine) fail(ctx context.Context, event *domain.WebhookEvent, reason string, path string, log zerolog.Logger) error {
	event.Status = domain.WebhookStatusFailed
	event.ErrorMessage = &reason
	if err := w.events.Update(ctx, event); err != nil {
		return fmt.Errorf("persist failed event: %w", err)
	}

	w.metrics.Incr(ports.MetricWebhookFailed, map[string]string{"Path": path})
	w.audit.Log(ctx, domain.AuditWebhookFailed, event.MerchantID.String(), map[string]string{
		"webhookEventId": event.ID.String(),
		"transactionId":  event.TransactionID.String(),
		"attempts":       strconv.Itoa(event.Attempts),
		"path":           path,
	})
	log.Error().Str("path", path).Int("attempts", event.Attempts).Str("reason", reason).Msg("webhook: delivery failed permanently")
	return nil
}
