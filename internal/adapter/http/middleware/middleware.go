package middleware

import (
	"net/http"
	"strings"
	"time"

	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/logger"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey carries the merchant API key.
	HeaderAPIKey = "X-API-Key"
	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxMerchantID = "merchant_id"
	CtxMerchant   = "merchant"
	CtxAPIKeyID   = "api_key_id"
	CtxSubject    = "subject"

	// RoleAdmin is the JWT role accepted on operator routes.
	RoleAdmin = "admin"
)

// RequestMeta assigns the request id and places the diagnostic metadata in
// the request context for loggers and audit events further down.
func RequestMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = uuid.New().String()
		}
		c.Set(response.CtxRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Request = c.Request.WithContext(logger.WithMeta(c.Request.Context(), logger.RequestMeta{
			RequestID: requestID,
			ClientIP:  c.ClientIP(),
		}))
		c.Next()
	}
}

// APIKeyAuth authenticates the merchant behind the API key header. The
// lookup is uncached so a revoked key fails on the next request.
func APIKeyAuth(keys ports.APIKeyService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := keys.Authenticate(c.Request.Context(), c.GetHeader(HeaderAPIKey))
		if err != nil {
			if apperror.KindOf(err) == apperror.KindInternal {
				reqLog := logger.For(c.Request.Context(), log)
				reqLog.Error().Err(err).Msg("api key authentication failed")
			}
			response.Error(c, err)
			c.Abort()
			return
		}

		merchantID := principal.Merchant.ID
		c.Set(CtxMerchantID, merchantID)
		c.Set(CtxMerchant, principal.Merchant)
		c.Set(CtxAPIKeyID, principal.Key.ID)

		meta, _ := logger.MetaFrom(c.Request.Context())
		meta.MerchantID = merchantID.String()
		c.Request = c.Request.WithContext(logger.WithMeta(c.Request.Context(), meta))

		c.Next()
	}
}

// JWTAuth validates operator bearer tokens and requires the given role.
func JWTAuth(tokenSvc ports.TokenService, role string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if claims.Role != role {
			reqLog := logger.For(c.Request.Context(), log)
			reqLog.Warn().
				Str("subject", claims.Subject).
				Str("role", claims.Role).
				Msg("operator route denied")
			response.Error(c, apperror.ErrForbidden("Insufficient role"))
			c.Abort()
			return
		}

		c.Set(CtxSubject, claims.Subject)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		reqLog := logger.For(c.Request.Context(), log)
		event := reqLog.Info()
		if status >= http.StatusInternalServerError {
			event = reqLog.Error()
		} else if status >= http.StatusBadRequest {
			event = reqLog.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				reqLog := logger.For(c.Request.Context(), log)
				reqLog.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
					ErrorCode: "SYS_000",
					Message:   "Internal server error",
					RequestID: response.RequestID(c),
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body size. Once the limit is exceeded the
// reader returns an error and binding fails with 400.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// MerchantFrom returns the authenticated merchant id set by APIKeyAuth.
func MerchantFrom(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxMerchantID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
