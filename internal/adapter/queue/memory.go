package queue

import (
	"context"
	"sync"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/rs/zerolog"
)

type envelope struct {
	msg      domain.DeliveryMessage
	receives int
}

// MemoryQueue is an in-process ports.DeliveryQueue for development and
// tests. A message whose handler fails maxReceives times moves to the
// dead-letter channel, mirroring an SQS redrive policy.
type MemoryQueue struct {
	primary     chan envelope
	deadLetters chan domain.DeliveryMessage
	maxReceives int
	redelivery  time.Duration
	log         zerolog.Logger

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	closed  bool
	done    chan struct{}
	pending sync.WaitGroup
}

// NewMemoryQueue creates a queue with the given buffer size.
func NewMemoryQueue(buffer, maxReceives int, redelivery time.Duration, log zerolog.Logger) *MemoryQueue {
	if maxReceives < 1 {
		maxReceives = 1
	}
	return &MemoryQueue{
		primary:     make(chan envelope, buffer),
		deadLetters: make(chan domain.DeliveryMessage, buffer),
		maxReceives: maxReceives,
		redelivery:  redelivery,
		log:         log,
		timers:      make(map[*time.Timer]struct{}),
		done:        make(chan struct{}),
	}
}

func (q *MemoryQueue) Publish(ctx context.Context, msg domain.DeliveryMessage) error {
	return q.enqueue(ctx, envelope{msg: msg})
}

// PublishRetry makes msg visible after delay.
func (q *MemoryQueue) PublishRetry(_ context.Context, msg domain.DeliveryMessage, delay time.Duration) error {
	q.after(delay, envelope{msg: msg})
	return nil
}

func (q *MemoryQueue) Consume(ctx context.Context, handler ports.DeliveryHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case env := <-q.primary:
			env.receives++
			if err := handler(ctx, env.msg); err == nil {
				continue
			}
			if env.receives >= q.maxReceives {
				q.log.Warn().Str("webhook_event_id", env.msg.WebhookEventID.String()).
					Int("receives", env.receives).Msg("moving delivery message to dead letters")
				select {
				case q.deadLetters <- env.msg:
				case <-ctx.Done():
					return nil
				}
				continue
			}
			q.after(q.redelivery, env)
		}
	}
}

func (q *MemoryQueue) ConsumeDeadLetters(ctx context.Context, handler ports.DeliveryHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-q.deadLetters:
			if err := handler(ctx, msg); err != nil {
				q.log.Error().Err(err).Str("webhook_event_id", msg.WebhookEventID.String()).
					Msg("dead letter handler failed, message dropped")
			}
		}
	}
}

// Close stops pending delayed publishes and waits for timers that already
// fired. A fired timer blocked on a full buffer drops its message.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.done)
	for t := range q.timers {
		if t.Stop() {
			q.pending.Done()
		}
	}
	q.timers = nil
	q.mu.Unlock()

	q.pending.Wait()
}

func (q *MemoryQueue) enqueue(ctx context.Context, env envelope) error {
	select {
	case q.primary <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) after(delay time.Duration, env envelope) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.pending.Add(1)
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		defer q.pending.Done()
		q.mu.Lock()
		delete(q.timers, t)
		q.mu.Unlock()

		select {
		case q.primary <- env:
		case <-q.done:
			q.log.Warn().Str("webhook_event_id", env.msg.WebhookEventID.String()).
				Msg("queue closed, delayed delivery message dropped")
		}
	})
	q.timers[t] = struct{}{}
}
