package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Provenance tags added to every audit event's data.
const (
	AuditTagSource        = "source"
	AuditTagSchemaVersion = "schemaVersion"
	AuditTagRequestID     = "requestId"
	AuditTagClientIP      = "clientIp"
)

// AuditTrailConfig holds the provenance tags and the publish bound.
type AuditTrailConfig struct {
	Source         string
	SchemaVersion  string
	PublishTimeout time.Duration
}

// AuditTrailImpl implements ports.AuditTrail.
// A nil publisher keeps events in the local log only.
type AuditTrailImpl struct {
	publisher ports.EventPublisher
	metrics   ports.Metrics
	cfg       AuditTrailConfig
	log       zerolog.Logger
	now       func() time.Time
	inflight  sync.WaitGroup
}

// NewAuditTrail creates a new AuditTrailImpl.
func NewAuditTrail(publisher ports.EventPublisher, metrics ports.Metrics, cfg AuditTrailConfig, log zerolog.Logger) *AuditTrailImpl {
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 2 * time.Second
	}
	return &AuditTrailImpl{
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Record builds a sealed audit event. The timestamp is cut to microseconds,
// the precision of the audit_events table, so stored rows still verify. The caller's data map is copied, never
// mutated.
func (a *AuditTrailImpl) Record(ctx context.Context, eventType domain.AuditEventType, merchantID string, data map[string]string) *domain.AuditEvent {
	if !eventType.Valid() {
		a.log.Error().Str("event_type", string(eventType)).Msg("audit: unknown event type")
	}
	if merchantID == "" {
		merchantID = domain.UnknownMerchant
	}

	enriched := make(map[string]string, len(data)+4)
	for k, v := range data {
		enriched[k] = v
	}
	enriched[AuditTagSource] = a.cfg.Source
	enriched[AuditTagSchemaVersion] = a.cfg.SchemaVersion
	if meta, ok := logger.MetaFrom(ctx); ok {
		if meta.RequestID != "" {
			enriched[AuditTagRequestID] = meta.RequestID
		}
		if meta.ClientIP != "" {
			enriched[AuditTagClientIP] = meta.ClientIP
		}
	}

	event := &domain.AuditEvent{
		ID:         uuid.NewString(),
		Timestamp:  a.now().UTC().Truncate(time.Microsecond),
		EventType:  eventType,
		MerchantID: merchantID,
		Data:       enriched,
	}
	event.Checksum = event.ComputeChecksum()
	return event
}

// Emit writes the event to the local log and publishes it in the
// background. Nothing here can fail the caller.
func (a *AuditTrailImpl) Emit(ctx context.Context, event *domain.AuditEvent) {
	if event == nil {
		return
	}
	a.writeLocal(ctx, event)

	if a.publisher == nil {
		return
	}
	a.inflight.Add(1)
	go a.publish(context.WithoutCancel(ctx), event)
}

// Log records and emits in one call.
func (a *AuditTrailImpl) Log(ctx context.Context, eventType domain.AuditEventType, merchantID string, data map[string]string) {
	a.Emit(ctx, a.Record(ctx, eventType, merchantID, data))
}

// Wait blocks until in-flight publishes finish.
func (a *AuditTrailImpl) Wait() {
	a.inflight.Wait()
}

// Close drains in-flight publishes and closes the publisher.
func (a *AuditTrailImpl) Close() error {
	a.Wait()
	if a.publisher == nil {
		return nil
	}
	return a.publisher.Close()
}

// writeLocal logs through a child logger that carries the event fields for
// this write only.
func (a *AuditTrailImpl) writeLocal(ctx context.Context, event *domain.AuditEvent) {
	scoped := logger.For(ctx, a.log).With().
		Str("event_id", event.ID).
		Str("event_type", string(event.EventType)).
		Str("event_merchant_id", event.MerchantID).
		Time("event_timestamp", event.Timestamp).
		Logger()

	entry := scoped.Info()
	if event.EventType.HighSeverity() {
		entry = scoped.Warn()
	}

	data := zerolog.Dict()
	for k, v := range event.Data {
		data = data.Str(k, v)
	}
	entry.Dict("data", data).Str("checksum", event.Checksum).Msg("audit")
}

func (a *AuditTrailImpl) publish(ctx context.Context, event *domain.AuditEvent) {
	defer a.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			a.publishFailed(event, fmt.Errorf("panic: %v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, a.cfg.PublishTimeout)
	defer cancel()

	if err := a.publisher.Publish(ctx, event); err != nil {
		a.publishFailed(event, err)
	}
}

func (a *AuditTrailImpl) publishFailed(event *domain.AuditEvent, err error) {
	a.log.Error().Err(err).
		Str("event_id", event.ID).
		Str("event_type", string(event.EventType)).
		Msg("audit: failed to publish event")
	a.metrics.Incr(ports.MetricAuditPublishFailed, map[string]string{"EventType": string(event.EventType)})
}

// merchantFromContext names the merchant of the current request for audit
// events raised below the HTTP layer.
func merchantFromContext(ctx context.Context) string {
	if meta, ok := logger.MetaFrom(ctx); ok && meta.MerchantID != "" {
		return meta.MerchantID
	}
	return domain.UnknownMerchant
}
