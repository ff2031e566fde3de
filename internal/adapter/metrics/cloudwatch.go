// Package metrics sends operator counters to Amazon CloudWatch.
package metrics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/rs/zerolog"
)

// CloudWatchAPI is the subset of the CloudWatch client used here.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// CloudWatchRecorder implements ports.Metrics. Each Incr sends one datum in
// the background, bounded by timeout, so callers never wait on CloudWatch.
type CloudWatchRecorder struct {
	client    CloudWatchAPI
	namespace string
	timeout   time.Duration
	log       zerolog.Logger
	wg        sync.WaitGroup
}

func NewCloudWatchRecorder(client CloudWatchAPI, namespace string, timeout time.Duration, log zerolog.Logger) *CloudWatchRecorder {
	return &CloudWatchRecorder{client: client, namespace: namespace, timeout: timeout, log: log}
}

// Incr records a count of one for name.
func (r *CloudWatchRecorder) Incr(name string, dims map[string]string) {
	datum := types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(1),
		Unit:       types.StandardUnitCount,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: dimensions(dims),
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(r.namespace),
			MetricData: []types.MetricDatum{datum},
		})
		if err != nil {
			r.log.Warn().Err(err).Str("metric", name).Msg("failed to put metric")
		}
	}()
}

// Flush waits for in-flight sends.
func (r *CloudWatchRecorder) Flush() {
	r.wg.Wait()
}

func dimensions(dims map[string]string) []types.Dimension {
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]types.Dimension, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Dimension{Name: aws.String(k), Value: aws.String(dims[k])})
	}
	return out
}

// Nop discards every metric. Used when metrics are disabled.
type Nop struct{}

func (Nop) Incr(string, map[string]string) {}
