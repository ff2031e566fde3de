package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"payment-orchestrator/config"
	"payment-orchestrator/internal/adapter/cloud"
	"payment-orchestrator/internal/adapter/gateway"
	httpHandler "payment-orchestrator/internal/adapter/http/handler"
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/adapter/metrics"
	"payment-orchestrator/internal/adapter/queue"
	pgStorage "payment-orchestrator/internal/adapter/storage/postgres"
	redisStorage "payment-orchestrator/internal/adapter/storage/redis"
	"payment-orchestrator/internal/adapter/stream"
	"payment-orchestrator/internal/adapter/vault"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/service"
	"payment-orchestrator/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	adminSubject := flag.String("issue-admin-token", "", "print an operator JWT for this subject and exit")
	flag.Parse()

	// Optional .env for local runs; real deployments use the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	if *adminSubject != "" {
		token, expiry, err := tokenSvc.Generate(*adminSubject, middleware.RoleAdmin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to issue admin token")
		}
		fmt.Printf("%s\n# expires %s\n", token, expiry.Format(time.RFC3339))
		return
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Payment Orchestrator")
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Redis
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// AWS, only when a driver needs it
	var awsCfg aws.Config
	if needsAWS(cfg) {
		awsCfg, err = cloud.LoadConfig(ctx, cfg.AWS, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load AWS configuration")
		}
	}

	// Repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	apiKeyRepo := pgStorage.NewAPIKeyRepo(pool)
	gatewayRepo := pgStorage.NewGatewayRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	webhookRepo := pgStorage.NewWebhookEventRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Infrastructure
	recorder := buildMetrics(cfg, awsCfg, log)
	deliveryQueue, closeQueue := buildQueue(cfg, awsCfg, log)
	publisher := buildAuditPublisher(cfg, awsCfg, pool, log)
	tokenVault, err := buildVault(cfg, awsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize token vault")
	}

	// Core services
	sigSvc := service.NewHMACSignatureService()
	audit := service.NewAuditTrail(publisher, recorder, service.AuditTrailConfig{
		Source:         cfg.Audit.Source,
		SchemaVersion:  cfg.Audit.SchemaVersion,
		PublishTimeout: cfg.Audit.PublishTimeout,
	}, log.With().Str("component", "audit").Logger())

	gatewayRouter, err := service.NewGatewayRouter(
		buildAdapters(cfg, log),
		gatewayRepo,
		audit,
		recorder,
		cfg.Gateway.Timeout,
		log.With().Str("component", "router").Logger(),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build gateway registry")
	}
	if gatewayRouter.CountAdapters() == 0 {
		log.Warn().Msg("No gateway adapters configured; authorizations will fail")
	}

	notifier := service.NewHTTPNotifier(&http.Client{Timeout: cfg.Webhook.Timeout}, sigSvc, cfg.Webhook.SigningSecret, log)
	webhookEngine := service.NewWebhookEngine(
		webhookRepo,
		merchantRepo,
		deliveryQueue,
		notifier,
		redisStorage.NewEventLock(rdb),
		audit,
		recorder,
		service.WebhookEngineConfig{
			MaxAttempts: cfg.Webhook.MaxAttempts,
			RetryDelay:  cfg.Webhook.RetryDelay,
			LockTTL:     cfg.Webhook.LockTTL,
		},
		log.With().Str("component", "webhook").Logger(),
	)

	rateLimiter := service.NewRateLimiter(redisStorage.NewRateLimitStore(rdb), cfg.RateLimit, recorder, log)
	apiKeySvc := service.NewAPIKeyService(apiKeyRepo, merchantRepo, transactor, sigSvc, audit, cfg.APIKey.Pepper, log)
	paymentSvc := service.NewPaymentService(merchantRepo, txRepo, gatewayRouter, webhookEngine, audit, cfg.Gateway.Timeout, log)
	tokenizationSvc := service.NewTokenizationService(tokenVault, audit, log)
	adminSvc := service.NewGatewayAdminService(gatewayRepo, merchantRepo, gatewayRouter, log)

	// Webhook workers
	var workers sync.WaitGroup
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	workers.Add(1)
	go func() {
		defer workers.Done()
		webhookEngine.Run(workersCtx, cfg.Webhook.Workers)
	}()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:      paymentSvc,
		TokenizationSvc: tokenizationSvc,
		WebhookSvc:      webhookEngine,
		APIKeySvc:       apiKeySvc,
		AdminSvc:        adminSvc,
		GatewayRouter:   gatewayRouter,
		RateLimiter:     rateLimiter,
		TokenSvc:        tokenSvc,
		Audit:           audit,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Logger: log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	stopWorkers()
	workers.Wait()
	closeQueue()

	if err := audit.Close(); err != nil {
		log.Error().Err(err).Msg("Audit publisher close failed")
	}
	if f, ok := recorder.(interface{ Flush() }); ok {
		f.Flush()
	}

	log.Info().Msg("Server exited")
}

func needsAWS(cfg *config.Config) bool {
	return cfg.Queue.Driver == "sqs" ||
		cfg.Audit.Driver == "sns" ||
		cfg.Vault.Driver == "secretsmanager" ||
		cfg.Metrics.Enabled
}

func buildMetrics(cfg *config.Config, awsCfg aws.Config, log zerolog.Logger) ports.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	return metrics.NewCloudWatchRecorder(cloudwatch.NewFromConfig(awsCfg), cfg.Metrics.Namespace, 2*time.Second, log)
}

// buildQueue returns the delivery queue and its shutdown hook.
func buildQueue(cfg *config.Config, awsCfg aws.Config, log zerolog.Logger) (ports.DeliveryQueue, func()) {
	qlog := log.With().Str("component", "queue").Logger()
	if cfg.Queue.Driver == "sqs" {
		q := queue.NewSQSQueue(sqs.NewFromConfig(awsCfg), cfg.Queue.PrimaryURL, cfg.Queue.DeadLetterURL, cfg.Queue.WaitTimeSecond, qlog)
		return q, func() {}
	}
	q := queue.NewMemoryQueue(1024, cfg.Queue.MaxReceives, 5*time.Second, qlog)
	return q, q.Close
}

// buildAuditPublisher picks the security-events sink. A nil publisher keeps
// audit events in the local log only.
func buildAuditPublisher(cfg *config.Config, awsCfg aws.Config, pool pgStorage.Pool, log zerolog.Logger) ports.EventPublisher {
	switch cfg.Audit.Driver {
	case "kafka":
		writer := stream.NewKafkaWriter(cfg.Audit.Brokers, cfg.Audit.Topic)
		return stream.NewKafkaPublisher(writer, cfg.Audit.Topic, log)
	case "sns":
		return stream.NewSNSPublisher(sns.NewFromConfig(awsCfg), cfg.Audit.TopicARN)
	case "postgres":
		return pgStorage.NewAuditEventRepo(pool)
	default:
		return nil
	}
}

func buildVault(cfg *config.Config, awsCfg aws.Config) (ports.TokenVault, error) {
	if cfg.Vault.Driver != "secretsmanager" {
		return vault.NewMemoryVault(), nil
	}
	sealer, err := vault.NewSealer(cfg.Vault.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return vault.NewSecretsManagerVault(
		secretsmanager.NewFromConfig(awsCfg),
		sealer,
		cfg.Vault.SecretPrefix,
		cfg.Vault.CacheTTL,
	), nil
}

// buildAdapters registers every gateway with credentials configured.
func buildAdapters(cfg *config.Config, log zerolog.Logger) []ports.GatewayAdapter {
	client := &http.Client{Timeout: cfg.Gateway.Timeout}
	acquirers := []struct {
		code            string
		conf            config.AcquirerConfig
		maxInstallments int
	}{
		{"CIELO", cfg.Gateway.Cielo, service.MaxInstallments},
		{"REDE", cfg.Gateway.Rede, service.MaxInstallments},
		{"PIX", cfg.Gateway.Pix, 1},
	}

	var adapters []ports.GatewayAdapter
	for _, a := range acquirers {
		if a.conf.BaseURL == "" {
			continue
		}
		adapters = append(adapters, gateway.NewAcquirerAdapter(gateway.AcquirerOptions{
			Code:            a.code,
			BaseURL:         a.conf.BaseURL,
			MerchantKey:     a.conf.MerchantKey,
			MaxInstallments: a.maxInstallments,
		}, client, log))
	}
	if cfg.Gateway.Stripe.SecretKey != "" {
		adapters = append(adapters, gateway.NewStripeAdapter(gateway.StripeOptions{
			SecretKey:  cfg.Gateway.Stripe.SecretKey,
			BaseURL:    cfg.Gateway.Stripe.BaseURL,
			Currency:   cfg.Gateway.Stripe.Currency,
			HTTPClient: client,
		}, log))
	}
	return adapters
}
