package handler

import (
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc      ports.PaymentService
	TokenizationSvc ports.TokenizationService
	WebhookSvc      ports.WebhookService
	APIKeySvc       ports.APIKeyService
	AdminSvc        ports.GatewayAdminService
	GatewayRouter   ports.GatewayRouter
	RateLimiter     ports.RateLimiter // nil = rate limiting disabled
	TokenSvc        ports.TokenService
	Audit           ports.AuditTrail
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// Merchant routes run request meta, then rate limiting, then API key
// authentication, then the handler.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestMeta())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.GatewayRouter, deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Merchant API (API key) ---
	merchant := v1.Group("")
	if deps.RateLimiter != nil {
		merchant.Use(middleware.RateLimit(deps.RateLimiter, deps.APIKeySvc, deps.Audit, deps.Logger))
	}
	merchant.Use(middleware.APIKeyAuth(deps.APIKeySvc, deps.Logger))

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := merchant.Group("/payments")
	{
		payments.POST("", paymentHandler.Authorize)
		payments.GET("/:id", paymentHandler.Get)
		payments.POST("/:id/capture", paymentHandler.Capture)
		payments.POST("/:id/void", paymentHandler.Void)
	}

	tokenHandler := NewTokenHandler(deps.TokenizationSvc)
	tokens := merchant.Group("/tokens")
	{
		tokens.POST("", tokenHandler.Tokenize)
		tokens.POST("/detokenize", tokenHandler.Detokenize)
	}

	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	merchant.GET("/webhooks/:id", webhookHandler.Get)

	// --- Operator API (JWT, admin role) ---
	adminHandler := NewAdminHandler(deps.AdminSvc, deps.APIKeySvc)
	admin := v1.Group("/admin", middleware.JWTAuth(deps.TokenSvc, middleware.RoleAdmin, deps.Logger))
	{
		admin.GET("/gateways", adminHandler.ListGateways)
		admin.POST("/gateways/reset-daily-volume", adminHandler.ResetDailyVolume)
		admin.PUT("/gateways/:code/health", adminHandler.SetHealth)
		admin.PUT("/gateways/:code/status", adminHandler.SetStatus)

		admin.POST("/merchants/reset-monthly-volume", adminHandler.ResetMonthlyVolume)
		admin.POST("/merchants/:id/api-keys", adminHandler.IssueKey)
		admin.POST("/merchants/:id/api-keys/:keyId/rotate", adminHandler.RotateKey)
		admin.DELETE("/merchants/:id/api-keys/:keyId", adminHandler.RevokeKey)
	}

	return r
}
