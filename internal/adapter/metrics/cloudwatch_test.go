package metrics

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudWatch struct {
	mu     sync.Mutex
	inputs []*cloudwatch.PutMetricDataInput
	err    error
	block  bool
}

func (f *fakeCloudWatch) PutMetricData(ctx context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, f.err
}

func TestCloudWatchRecorder_Incr(t *testing.T) {
	client := &fakeCloudWatch{}
	r := NewCloudWatchRecorder(client, "PaymentOrchestrator", time.Second, zerolog.New(io.Discard))

	r.Incr("GatewayFailover", map[string]string{"to": "REDE", "from": "CIELO"})
	r.Flush()

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "PaymentOrchestrator", aws.ToString(in.Namespace))
	require.Len(t, in.MetricData, 1)
	d := in.MetricData[0]
	assert.Equal(t, "GatewayFailover", aws.ToString(d.MetricName))
	assert.Equal(t, 1.0, aws.ToFloat64(d.Value))
	require.Len(t, d.Dimensions, 2)
	assert.Equal(t, "from", aws.ToString(d.Dimensions[0].Name))
	assert.Equal(t, "to", aws.ToString(d.Dimensions[1].Name))
}

func TestCloudWatchRecorder_DoesNotBlockCaller(t *testing.T) {
	client := &fakeCloudWatch{block: true}
	r := NewCloudWatchRecorder(client, "ns", 20*time.Millisecond, zerolog.New(io.Discard))

	start := time.Now()
	r.Incr("WebhookFailed", nil)
	assert.Less(t, time.Since(start), 10*time.Millisecond)
	r.Flush()
}

func TestCloudWatchRecorder_ErrorIsSwallowed(t *testing.T) {
	client := &fakeCloudWatch{err: errors.New("denied")}
	r := NewCloudWatchRecorder(client, "ns", time.Second, zerolog.New(io.Discard))

	r.Incr("AuditPublishFailed", map[string]string{})
	r.Flush()
	assert.Len(t, client.inputs, 1)
}

func TestNop(t *testing.T) {
	Nop{}.Incr("anything", nil)
}
