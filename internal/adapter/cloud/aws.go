// Package cloud builds the shared AWS SDK configuration.
package cloud

import (
	"context"
	"fmt"

	"payment-orchestrator/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog"
)

// LoadConfig resolves credentials through the default chain. A non-empty
// endpoint points every client at it (LocalStack and similar).
func LoadConfig(ctx context.Context, cfg config.AWSConfig, log zerolog.Logger) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(cfg.Endpoint))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading aws config: %w", err)
	}

	log.Info().
		Str("region", awsCfg.Region).
		Str("endpoint", cfg.Endpoint).
		Msg("AWS configuration loaded")

	return awsCfg, nil
}
