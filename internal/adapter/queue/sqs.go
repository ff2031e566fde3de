// Package queue carries webhook delivery attempts between the producer and
// the delivery workers.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog"
)

// maxDelaySeconds is the SQS ceiling for per-message delay.
const maxDelaySeconds = 900

// SQSAPI is the subset of the SQS client used by SQSQueue.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSQueue implements ports.DeliveryQueue on Amazon SQS. Redelivery after a
// failed handler relies on the visibility timeout, and dead-lettering on the
// primary queue's redrive policy.
type SQSQueue struct {
	client        SQSAPI
	primaryURL    string
	deadLetterURL string
	waitSeconds   int32
	errBackoff    time.Duration
	log           zerolog.Logger
}

// NewSQSQueue creates a queue bound to the primary and dead-letter URLs.
func NewSQSQueue(client SQSAPI, primaryURL, deadLetterURL string, waitSeconds int32, log zerolog.Logger) *SQSQueue {
	return &SQSQueue{
		client:        client,
		primaryURL:    primaryURL,
		deadLetterURL: deadLetterURL,
		waitSeconds:   waitSeconds,
		errBackoff:    5 * time.Second,
		log:           log,
	}
}

func (q *SQSQueue) Publish(ctx context.Context, msg domain.DeliveryMessage) error {
	return q.send(ctx, msg, 0)
}

// PublishRetry sends msg with a delivery delay, capped at the SQS maximum.
func (q *SQSQueue) PublishRetry(ctx context.Context, msg domain.DeliveryMessage, delay time.Duration) error {
	seconds := int32(delay / time.Second)
	if seconds > maxDelaySeconds {
		seconds = maxDelaySeconds
	}
	return q.send(ctx, msg, seconds)
}

func (q *SQSQueue) Consume(ctx context.Context, handler ports.DeliveryHandler) error {
	return q.poll(ctx, q.primaryURL, handler)
}

func (q *SQSQueue) ConsumeDeadLetters(ctx context.Context, handler ports.DeliveryHandler) error {
	if q.deadLetterURL == "" {
		<-ctx.Done()
		return nil
	}
	return q.poll(ctx, q.deadLetterURL, handler)
}

func (q *SQSQueue) send(ctx context.Context, msg domain.DeliveryMessage, delaySeconds int32) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal delivery message: %w", err)
	}

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(q.primaryURL),
		MessageBody:  aws.String(string(body)),
		DelaySeconds: delaySeconds,
	})
	if err != nil {
		return fmt.Errorf("sqs send: %w", err)
	}
	return nil
}

func (q *SQSQueue) poll(ctx context.Context, url string, handler ports.DeliveryHandler) error {
	log := q.log.With().Str("queue", url).Logger()
	log.Info().Msg("SQS polling started")

	for {
		if ctx.Err() != nil {
			log.Info().Msg("SQS polling stopped")
			return nil
		}

		out, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(url),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     q.waitSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Error().Err(err).Msg("SQS receive failed")
			select {
			case <-ctx.Done():
			case <-time.After(q.errBackoff):
			}
			continue
		}

		for _, m := range out.Messages {
			q.process(ctx, log, url, aws.ToString(m.Body), m.ReceiptHandle, handler)
		}
	}
}

func (q *SQSQueue) process(ctx context.Context, log zerolog.Logger, url, body string, receipt *string, handler ports.DeliveryHandler) {
	var msg domain.DeliveryMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		// Unparseable messages would loop until dead-lettered; drop them now.
		log.Error().Err(err).Str("body", body).Msg("discarding malformed delivery message")
		q.delete(ctx, log, url, receipt)
		return
	}

	if err := handler(ctx, msg); err != nil {
		log.Warn().Err(err).Str("webhook_event_id", msg.WebhookEventID.String()).
			Int("attempt", msg.AttemptNumber).Msg("delivery message left for redelivery")
		return
	}
	q.delete(ctx, log, url, receipt)
}

func (q *SQSQueue) delete(ctx context.Context, log zerolog.Logger, url string, receipt *string) {
	if _, err := q.client.DeleteMessage(context.WithoutCancel(ctx), &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(url),
		ReceiptHandle: receipt,
	}); err != nil {
		log.Error().Err(err).Msg("SQS delete failed")
	}
}
