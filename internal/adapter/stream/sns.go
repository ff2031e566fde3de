package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"payment-orchestrator/internal/core/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSAPI is the subset of the SNS client used by SNSPublisher.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher implements ports.EventPublisher on an SNS topic.
type SNSPublisher struct {
	client   SNSAPI
	topicARN string
}

func NewSNSPublisher(client SNSAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client, topicARN: topicARN}
}

func (p *SNSPublisher) Publish(ctx context.Context, event *domain.AuditEvent) error {
	if p.topicARN == "" {
		return fmt.Errorf("empty topic arn")
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(data)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventId":   {DataType: aws.String("String"), StringValue: aws.String(event.ID)},
			"eventType": {DataType: aws.String("String"), StringValue: aws.String(string(event.EventType))},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish to %s: %w", p.topicARN, err)
	}
	return nil
}

// Close is a no-op; the SNS client holds no connections of its own.
func (p *SNSPublisher) Close() error { return nil }
