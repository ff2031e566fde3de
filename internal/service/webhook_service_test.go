package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/core/ports/mocks"
	"payment-orchestrator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testEngineConfig = WebhookEngineConfig{
	MaxAttempts: domain.MaxWebhookAttempts,
	RetryDelay:  time.Minute,
	LockTTL:     time.Second,
}

type webhookTestDeps struct {
	engine    *WebhookEngine
	events    *mocks.MockWebhookEventRepository
	merchants *mocks.MockMerchantRepository
	queue     *mocks.MockDeliveryQueue
	notifier  *mocks.MockWebhookNotifier
	lock      *mocks.MockEventLock
	audit     *mocks.MockAuditTrail
}

func setupWebhookEngine(t *testing.T) *webhookTestDeps {
	ctrl := gomock.NewController(t)
	d := &webhookTestDeps{
		events:    mocks.NewMockWebhookEventRepository(ctrl),
		merchants: mocks.NewMockMerchantRepository(ctrl),
		queue:     mocks.NewMockDeliveryQueue(ctrl),
		notifier:  mocks.NewMockWebhookNotifier(ctrl),
		lock:      mocks.NewMockEventLock(ctrl),
		audit:     mocks.NewMockAuditTrail(ctrl),
	}
	d.engine = NewWebhookEngine(d.events, d.merchants, d.queue, d.notifier, d.lock, d.audit, nopMetrics{}, testEngineConfig, newTestLogger())
	return d
}

func (d *webhookTestDeps) expectLock() {
	d.lock.EXPECT().Acquire(gomock.Any(), gomock.Any(), time.Second).Return("token", true, nil)
	d.lock.EXPECT().Release(gomock.Any(), gomock.Any(), "token").Return(nil)
}

func merchantWithWebhook(id uuid.UUID) *domain.Merchant {
	url := "https://merchant.example.com/webhook"
	return &domain.Merchant{ID: id, Plan: domain.PlanBasic, Status: domain.MerchantStatusActive, WebhookURL: &url}
}

func pendingEvent(attempts int) *domain.WebhookEvent {
	return &domain.WebhookEvent{
		ID:            uuid.New(),
		TransactionID: uuid.New(),
		MerchantID:    uuid.New(),
		EventType:     domain.WebhookEventAuthorized,
		Payload:       json.RawMessage(`{}`),
		Status:        domain.WebhookStatusPending,
		Attempts:      attempts,
		MaxAttempts:   domain.MaxWebhookAttempts,
	}
}

// ==================== Notify Tests ====================

func TestWebhookEngine_Notify_CreatesEventAndEnqueuesFirstAttempt(t *testing.T) {
	d := setupWebhookEngine(t)
	ctx := context.Background()
	tx := &domain.Transaction{
		ID: uuid.New(), MerchantID: uuid.New(), GatewayCode: "CIELO",
		Amount: 5000, Installments: 2, Status: domain.TransactionStatusAuthorized,
	}

	var created *domain.WebhookEvent
	d.merchants.EXPECT().GetByID(ctx, tx.MerchantID).Return(merchantWithWebhook(tx.MerchantID), nil)
	d.events.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.WebhookEvent) error {
		created = e
		return nil
	})
	d.queue.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg domain.DeliveryMessage) error {
		assert.Equal(t, created.ID, msg.WebhookEventID)
		assert.Equal(t, 1, msg.AttemptNumber)
		return nil
	})

	d.engine.Notify(ctx, tx)

	require.NotNil(t, created)
	assert.Equal(t, domain.WebhookStatusPending, created.Status)
	assert.Equal(t, 0, created.Attempts)
	assert.Equal(t, domain.MaxWebhookAttempts, created.MaxAttempts)
	assert.Equal(t, domain.WebhookEventAuthorized, created.EventType)

	var payload WebhookPayload
	require.NoError(t, json.Unmarshal(created.Payload, &payload))
	assert.Equal(t, tx.ID, payload.TransactionID)
	assert.Equal(t, int64(5000), payload.Amount)
	assert.Equal(t, "AUTHORIZED", payload.Status)
}

func TestWebhookEngine_Notify_NoWebhookURL(t *testing.T) {
	d := setupWebhookEngine(t)
	tx := &domain.Transaction{ID: uuid.New(), MerchantID: uuid.New(), Status: domain.TransactionStatusCaptured}

	d.merchants.EXPECT().GetByID(gomock.Any(), tx.MerchantID).Return(&domain.Merchant{ID: tx.MerchantID}, nil)
	// No Create or Publish expected

	d.engine.Notify(context.Background(), tx)
}

func TestWebhookEngine_Notify_ErrorsAreSwallowed(t *testing.T) {
	d := setupWebhookEngine(t)
	tx := &domain.Transaction{ID: uuid.New(), MerchantID: uuid.New(), Status: domain.TransactionStatusVoided}

	d.merchants.EXPECT().GetByID(gomock.Any(), tx.MerchantID).Return(merchantWithWebhook(tx.MerchantID), nil)
	d.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.NotPanics(t, func() { d.engine.Notify(context.Background(), tx) })
}

// ==================== HandleAttempt Tests ====================

func TestWebhookEngine_HandleAttempt_Success(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(0)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil)
	d.notifier.EXPECT().Deliver(gomock.Any(), "https://merchant.example.com/webhook", ev).Return(nil)
	d.events.EXPECT().Update(gomock.Any(), ev).Return(nil)

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookStatusSuccess, ev.Status)
	assert.Equal(t, 1, ev.Attempts)
	assert.NotNil(t, ev.LastAttemptAt)
}

func TestWebhookEngine_HandleAttempt_MissingEventIsDropped(t *testing.T) {
	d := setupWebhookEngine(t)
	id := uuid.New()
	d.expectLock()
	d.events.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: id, AttemptNumber: 1})
	assert.NoError(t, err)
}

func TestWebhookEngine_HandleAttempt_AlreadySucceededIsNoop(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(1)
	ev.Status = domain.WebhookStatusSuccess
	d.expectLock()
	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	// No Deliver, no Update

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, ev.Attempts)
}

func TestWebhookEngine_HandleAttempt_StaleAttemptIsDropped(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(2)
	d.expectLock()
	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 2})
	assert.NoError(t, err)
}

func TestWebhookEngine_HandleAttempt_FailureSchedulesRetry(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(1)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil)
	d.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), ev).Return(apperror.WebhookDeliveryFailed(errors.New("HTTP 500")))
	d.queue.EXPECT().PublishRetry(gomock.Any(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 3}, time.Minute).Return(nil)
	d.events.EXPECT().Update(gomock.Any(), ev).Return(nil)

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookStatusPending, ev.Status)
	assert.Equal(t, 2, ev.Attempts)
	require.NotNil(t, ev.ErrorMessage)
	assert.Contains(t, *ev.ErrorMessage, "HTTP 500")
}

func TestWebhookEngine_HandleAttempt_RetryPublishFailureRedelivers(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(0)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil)
	d.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), ev).Return(apperror.WebhookDeliveryFailed(errors.New("timeout")))
	d.queue.EXPECT().PublishRetry(gomock.Any(), gomock.Any(), time.Minute).Return(errors.New("sqs throttled"))
	// No Update: the attempt is retried on redelivery

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 1})
	assert.Error(t, err)
}

func TestWebhookEngine_HandleAttempt_FifthFailureMarksFailed(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(4)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil)
	d.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), ev).Return(apperror.WebhookDeliveryFailed(errors.New("HTTP 502")))
	d.events.EXPECT().Update(gomock.Any(), ev).Return(nil)
	d.audit.EXPECT().Log(gomock.Any(), domain.AuditWebhookFailed, ev.MerchantID.String(), gomock.Any())
	// No PublishRetry: there is no 6th attempt

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookStatusFailed, ev.Status)
	assert.Equal(t, 5, ev.Attempts)
	assert.Contains(t, *ev.ErrorMessage, "after 5 attempts")
}

func TestWebhookEngine_HandleAttempt_PermanentFailureStopsEarly(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(0)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(&domain.Merchant{ID: ev.MerchantID}, nil)
	d.events.EXPECT().Update(gomock.Any(), ev).Return(nil)
	d.audit.EXPECT().Log(gomock.Any(), domain.AuditWebhookFailed, gomock.Any(), gomock.Any())

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookStatusFailed, ev.Status)
	assert.Contains(t, *ev.ErrorMessage, "after 1 attempts")
}

func TestWebhookEngine_HandleAttempt_LockedEventIsRedelivered(t *testing.T) {
	d := setupWebhookEngine(t)
	d.lock.EXPECT().Acquire(gomock.Any(), gomock.Any(), time.Second).Return("", false, nil)

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: uuid.New(), AttemptNumber: 1})
	assert.ErrorIs(t, err, errEventLocked)
}

func TestWebhookEngine_HandleAttempt_VersionConflictIsRedelivered(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(0)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil)
	d.notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), ev).Return(nil)
	d.events.EXPECT().Update(gomock.Any(), ev).Return(apperror.ErrVersionConflict("webhook event"))

	err := d.engine.HandleAttempt(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 1})
	assert.True(t, apperror.Is(err, apperror.KindConflict))
}

// ==================== HandleDeadLetter Tests ====================

func TestWebhookEngine_HandleDeadLetter_MarksFailed(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(3)
	d.expectLock()

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)
	d.events.EXPECT().Update(gomock.Any(), ev).Return(nil)
	d.audit.EXPECT().Log(gomock.Any(), domain.AuditWebhookFailed, gomock.Any(), gomock.Any())

	err := d.engine.HandleDeadLetter(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookStatusFailed, ev.Status)
	assert.Equal(t, 4, ev.Attempts)
	assert.Contains(t, *ev.ErrorMessage, "after 4 attempts")
}

func TestWebhookEngine_HandleDeadLetter_TerminalIsNoop(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(5)
	ev.Status = domain.WebhookStatusFailed
	d.expectLock()
	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil)

	err := d.engine.HandleDeadLetter(context.Background(), domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 5})
	assert.NoError(t, err)
}

// ==================== GetEvent Tests ====================

func TestWebhookEngine_GetEvent_Ownership(t *testing.T) {
	d := setupWebhookEngine(t)
	ev := pendingEvent(1)

	d.events.EXPECT().GetByID(gomock.Any(), ev.ID).Return(ev, nil).Times(2)

	got, err := d.engine.GetEvent(context.Background(), ev.MerchantID, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev, got)

	_, err = d.engine.GetEvent(context.Background(), uuid.New(), ev.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

// ==================== Convergence ====================

// memEventStore is a version-checked WebhookEventRepository.
type memEventStore struct {
	mu     sync.Mutex
	events map[uuid.UUID]domain.WebhookEvent
	writes int
}

func (s *memEventStore) Create(_ context.Context, e *domain.WebhookEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = *e
	return nil
}

func (s *memEventStore) GetByID(_ context.Context, id uuid.UUID) (*domain.WebhookEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *memEventStore) Update(_ context.Context, e *domain.WebhookEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.events[e.ID]
	if stored.Version != e.Version {
		return apperror.ErrVersionConflict("webhook event")
	}
	e.Version++
	s.events[e.ID] = *e
	s.writes++
	return nil
}

// memLock is an in-process EventLock.
type memLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func (l *memLock) Acquire(_ context.Context, key string, _ time.Duration) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return "", false, nil
	}
	l.held[key] = true
	return key, true, nil
}

func (l *memLock) Release(_ context.Context, key string, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

func TestWebhookEngine_ExhaustionAndDeadLetterConvergeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	merchants := mocks.NewMockMerchantRepository(ctrl)
	notifier := mocks.NewMockWebhookNotifier(ctrl)
	audit := mocks.NewMockAuditTrail(ctrl)
	store := &memEventStore{events: map[uuid.UUID]domain.WebhookEvent{}}

	engine := NewWebhookEngine(store, merchants, mocks.NewMockDeliveryQueue(ctrl), notifier,
		&memLock{held: map[string]bool{}}, audit, nopMetrics{}, testEngineConfig, newTestLogger())

	ev := pendingEvent(4)
	require.NoError(t, store.Create(context.Background(), ev))

	merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil).AnyTimes()
	notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperror.WebhookDeliveryFailed(errors.New("HTTP 500"))).AnyTimes()
	audit.EXPECT().Log(gomock.Any(), domain.AuditWebhookFailed, gomock.Any(), gomock.Any()).Times(1)

	msg := domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 5}
	handlers := []ports.DeliveryHandler{engine.HandleAttempt, engine.HandleDeadLetter}

	// Either handler may lose the lock race; redeliver until both settle.
	var wg sync.WaitGroup
	for _, h := range handlers {
		wg.Add(1)
		go func(h ports.DeliveryHandler) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if err := h(context.Background(), msg); !errors.Is(err, errEventLocked) {
					return
				}
				time.Sleep(time.Millisecond)
			}
		}(h)
	}
	wg.Wait()

	final, err := store.GetByID(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookStatusFailed, final.Status)
	assert.Equal(t, 5, final.Attempts)
	assert.Equal(t, 1, store.writes, "exactly one terminal write")
}

// ==================== Full retry scenario ====================

func TestWebhookEngine_AlwaysFailingEndpointStopsAfterFiveAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	merchants := mocks.NewMockMerchantRepository(ctrl)
	notifier := mocks.NewMockWebhookNotifier(ctrl)
	queue := mocks.NewMockDeliveryQueue(ctrl)
	audit := mocks.NewMockAuditTrail(ctrl)
	store := &memEventStore{events: map[uuid.UUID]domain.WebhookEvent{}}

	engine := NewWebhookEngine(store, merchants, queue, notifier,
		&memLock{held: map[string]bool{}}, audit, nopMetrics{}, testEngineConfig, newTestLogger())

	ev := pendingEvent(0)
	require.NoError(t, store.Create(context.Background(), ev))

	var scheduled []domain.DeliveryMessage
	merchants.EXPECT().GetByID(gomock.Any(), ev.MerchantID).Return(merchantWithWebhook(ev.MerchantID), nil).AnyTimes()
	notifier.EXPECT().Deliver(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperror.WebhookDeliveryFailed(errors.New("HTTP 500"))).Times(5)
	queue.EXPECT().PublishRetry(gomock.Any(), gomock.Any(), time.Minute).DoAndReturn(
		func(_ context.Context, msg domain.DeliveryMessage, _ time.Duration) error {
			scheduled = append(scheduled, msg)
			return nil
		}).Times(4)
	audit.EXPECT().Log(gomock.Any(), domain.AuditWebhookFailed, gomock.Any(), gomock.Any()).Times(1)

	msg := domain.DeliveryMessage{WebhookEventID: ev.ID, AttemptNumber: 1}
	for {
		require.NoError(t, engine.HandleAttempt(context.Background(), msg))
		if len(scheduled) == 0 {
			break
		}
		msg, scheduled = scheduled[0], scheduled[1:]
	}

	final, _ := store.GetByID(context.Background(), ev.ID)
	assert.Equal(t, domain.WebhookStatusFailed, final.Status)
	assert.Equal(t, 5, final.Attempts)
	assert.Contains(t, *final.ErrorMessage, "delivery failed after 5 attempts")
}
