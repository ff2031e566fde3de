package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Audit     AuditConfig     `mapstructure:"audit"`
	Vault     VaultConfig     `mapstructure:"vault"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	APIKey    APIKeyConfig    `mapstructure:"apikey"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// RateLimitConfig holds the fixed window and the per-plan request quotas.
type RateLimitConfig struct {
	Window     time.Duration `mapstructure:"window"`
	Free       int64         `mapstructure:"free"`
	Basic      int64         `mapstructure:"basic"`
	Pro        int64         `mapstructure:"pro"`
	Enterprise int64         `mapstructure:"enterprise"`
}

// AcquirerConfig describes one JSON-over-HTTP acquirer integration.
type AcquirerConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	MerchantKey string `mapstructure:"merchant_key"`
}

type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	BaseURL   string `mapstructure:"base_url"` // empty = Stripe production API
	Currency  string `mapstructure:"currency"`
}

type GatewayConfig struct {
	Timeout time.Duration  `mapstructure:"timeout"`
	Cielo   AcquirerConfig `mapstructure:"cielo"`
	Rede    AcquirerConfig `mapstructure:"rede"`
	Pix     AcquirerConfig `mapstructure:"pix"`
	Stripe  StripeConfig   `mapstructure:"stripe"`
}

type WebhookConfig struct {
	MaxAttempts   int           `mapstructure:"max_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Workers       int           `mapstructure:"workers"`
	SigningSecret string        `mapstructure:"signing_secret"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
}

type QueueConfig struct {
	Driver         string `mapstructure:"driver"` // sqs, memory
	PrimaryURL     string `mapstructure:"primary_url"`
	DeadLetterURL  string `mapstructure:"dead_letter_url"`
	MaxReceives    int    `mapstructure:"max_receives"`
	WaitTimeSecond int32  `mapstructure:"wait_time_seconds"`
}

type AuditConfig struct {
	Driver         string        `mapstructure:"driver"` // kafka, sns, postgres, log
	Brokers        []string      `mapstructure:"brokers"`
	Topic          string        `mapstructure:"topic"`
	TopicARN       string        `mapstructure:"topic_arn"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
	Source         string        `mapstructure:"source"`
	SchemaVersion  string        `mapstructure:"schema_version"`
}

type VaultConfig struct {
	Driver        string        `mapstructure:"driver"` // secretsmanager, memory
	SecretPrefix  string        `mapstructure:"secret_prefix"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	EncryptionKey string        `mapstructure:"encryption_key"` // 64 hex chars, AES-256
}

type AWSConfig struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"` // LocalStack or similar
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

type APIKeyConfig struct {
	Pepper string `mapstructure:"pepper"` // HMAC key for stored API key hashes
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: POR_ (Payment ORchestrator).
// Nested keys use underscore: POR_DATABASE_HOST, POR_WEBHOOK_WORKERS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "payment_orchestrator")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "payment-orchestrator")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("ratelimit.free", 60)
	v.SetDefault("ratelimit.basic", 300)
	v.SetDefault("ratelimit.pro", 1000)
	v.SetDefault("ratelimit.enterprise", 5000)

	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("gateway.cielo.base_url", "")
	v.SetDefault("gateway.cielo.merchant_key", "")
	v.SetDefault("gateway.rede.base_url", "")
	v.SetDefault("gateway.rede.merchant_key", "")
	v.SetDefault("gateway.pix.base_url", "")
	v.SetDefault("gateway.pix.merchant_key", "")
	v.SetDefault("gateway.stripe.secret_key", "")
	v.SetDefault("gateway.stripe.base_url", "")
	v.SetDefault("gateway.stripe.currency", "brl")

	v.SetDefault("webhook.max_attempts", 5)
	v.SetDefault("webhook.retry_delay", "60s")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("webhook.workers", 4)
	v.SetDefault("webhook.signing_secret", "")
	v.SetDefault("webhook.lock_ttl", "30s")

	v.SetDefault("queue.driver", "memory")
	v.SetDefault("queue.primary_url", "")
	v.SetDefault("queue.dead_letter_url", "")
	v.SetDefault("queue.max_receives", 10)
	v.SetDefault("queue.wait_time_seconds", 20)

	v.SetDefault("audit.driver", "log")
	v.SetDefault("audit.brokers", []string{"localhost:9092"})
	v.SetDefault("audit.topic", "security-events")
	v.SetDefault("audit.topic_arn", "")
	v.SetDefault("audit.publish_timeout", "2s")
	v.SetDefault("audit.source", "payment-orchestrator")
	v.SetDefault("audit.schema_version", "1.0")

	v.SetDefault("vault.driver", "memory")
	v.SetDefault("vault.encryption_key", "")
	v.SetDefault("vault.secret_prefix", "payment-orchestrator/tokens/")
	v.SetDefault("vault.cache_ttl", "5m")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "PaymentOrchestrator")

	v.SetDefault("apikey.pepper", "")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: POR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("POR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.Webhook.MaxAttempts < 1 {
		return fmt.Errorf("webhook.max_attempts must be >= 1, got %d", c.Webhook.MaxAttempts)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit.window must be positive")
	}
	switch c.Queue.Driver {
	case "memory":
	case "sqs":
		if c.Queue.PrimaryURL == "" {
			return fmt.Errorf("queue.primary_url is required for the sqs driver")
		}
	default:
		return fmt.Errorf("unknown queue.driver %q", c.Queue.Driver)
	}
	switch c.Audit.Driver {
	case "log", "kafka", "postgres":
	case "sns":
		if c.Audit.TopicARN == "" {
			return fmt.Errorf("audit.topic_arn is required for the sns driver")
		}
	default:
		return fmt.Errorf("unknown audit.driver %q", c.Audit.Driver)
	}
	switch c.Vault.Driver {
	case "memory":
	case "secretsmanager":
		if len(c.Vault.EncryptionKey) != 64 {
			return fmt.Errorf("vault.encryption_key must be 64 hex characters for the secretsmanager driver")
		}
	default:
		return fmt.Errorf("unknown vault.driver %q", c.Vault.Driver)
	}
	return nil
}
