// Package stream ships audit events to the security-events stream.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implements ports.EventPublisher on a Kafka topic. Events
// are keyed by event id.
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
	log    zerolog.Logger
}

// NewKafkaWriter builds the writer used in production.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// NewKafkaPublisher wraps writer.
func NewKafkaPublisher(writer MessageWriter, topic string, log zerolog.Logger) *KafkaPublisher {
	log.Info().Str("topic", topic).Msg("Kafka audit publisher initialized")
	return &KafkaPublisher{writer: writer, topic: topic, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event *domain.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(event.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write to %s: %w", p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("closing kafka writer: %w", err)
	}
	p.log.Info().Str("topic", p.topic).Msg("Kafka audit publisher closed")
	return nil
}
