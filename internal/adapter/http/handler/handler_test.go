package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/internal/core/ports/mocks"
	"payment-orchestrator/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testKey = "pk_aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

type fixture struct {
	router   *gin.Engine
	payments *mocks.MockPaymentService
	tokens   *mocks.MockTokenizationService
	webhooks *mocks.MockWebhookService
	keys     *mocks.MockAPIKeyService
	admin    *mocks.MockGatewayAdminService
	gateways *mocks.MockGatewayRouter
	jwt      *mocks.MockTokenService
	limiter  *mocks.MockRateLimiter
	audit    *mocks.MockAuditTrail
	health   *mocks.MockHealthChecker
	merchant *domain.Merchant
}

func setup(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		payments: mocks.NewMockPaymentService(ctrl),
		tokens:   mocks.NewMockTokenizationService(ctrl),
		webhooks: mocks.NewMockWebhookService(ctrl),
		keys:     mocks.NewMockAPIKeyService(ctrl),
		admin:    mocks.NewMockGatewayAdminService(ctrl),
		gateways: mocks.NewMockGatewayRouter(ctrl),
		jwt:      mocks.NewMockTokenService(ctrl),
		limiter:  mocks.NewMockRateLimiter(ctrl),
		audit:    mocks.NewMockAuditTrail(ctrl),
		health:   mocks.NewMockHealthChecker(ctrl),
		merchant: &domain.Merchant{ID: uuid.New(), Status: domain.MerchantStatusActive, Plan: domain.PlanBasic},
	}
	f.router = SetupRouter(RouterDeps{
		PaymentSvc:      f.payments,
		TokenizationSvc: f.tokens,
		WebhookSvc:      f.webhooks,
		APIKeySvc:       f.keys,
		AdminSvc:        f.admin,
		GatewayRouter:   f.gateways,
		RateLimiter:     f.limiter,
		TokenSvc:        f.jwt,
		Audit:           f.audit,
		HealthCheckers:  []ports.HealthChecker{f.health},
		Logger:          zerolog.Nop(),
	})
	return f
}

// authenticated primes the rate limiter and API key expectations for one
// merchant request.
func (f *fixture) authenticated() {
	f.keys.EXPECT().ResolvePlan(gomock.Any(), testKey).Return(domain.PlanBasic)
	f.limiter.EXPECT().LimitForPlan(domain.PlanBasic).Return(int64(300))
	f.limiter.EXPECT().Check(gomock.Any(), testKey, int64(300)).
		Return(ports.RateLimitDecision{Allowed: true, Limit: 300, Remaining: 299, ResetIn: 60})
	f.keys.EXPECT().Authenticate(gomock.Any(), testKey).Return(&ports.Principal{
		Key:      &domain.APIKey{ID: uuid.New(), MerchantID: f.merchant.ID, Status: domain.APIKeyStatusActive},
		Merchant: f.merchant,
	}, nil)
}

func (f *fixture) merchantRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	return f.do(method, path, body, map[string]string{middleware.HeaderAPIKey: testKey})
}

func (f *fixture) adminRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	f.jwt.EXPECT().Validate("admin-token").Return(&ports.TokenClaims{Subject: "ops", Role: middleware.RoleAdmin}, nil)
	return f.do(method, path, body, map[string]string{"Authorization": "Bearer admin-token"})
}

func (f *fixture) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "body: %s", w.Body.String())
	return data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

func sampleTx(merchantID uuid.UUID, status domain.TransactionStatus) *domain.Transaction {
	now := time.Now()
	return &domain.Transaction{
		ID:               uuid.New(),
		MerchantID:       merchantID,
		GatewayCode:      "CIELO",
		GatewayReference: "cielo-123",
		Amount:           15000,
		Installments:     3,
		CardTokenMasked:  "tok_0f8e****6666",
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// --- Payments ---

func TestAuthorize_Success(t *testing.T) {
	f := setup(t)
	f.authenticated()

	tx := sampleTx(f.merchant.ID, domain.TransactionStatusAuthorized)
	f.payments.EXPECT().Authorize(gomock.Any(), ports.AuthorizeCommand{
		MerchantID:   f.merchant.ID,
		Amount:       15000,
		CardToken:    "tok_abc",
		CVV:          "123",
		Installments: 3,
	}).Return(tx, nil)

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"amount": 15000, "card_token": "tok_abc", "cvv": "123", "installments": 3,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "300", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "299", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Reset"))

	data := decodeData(t, w)
	assert.Equal(t, tx.ID.String(), data["id"])
	assert.Equal(t, "CIELO", data["gateway_code"])
	assert.Equal(t, "AUTHORIZED", data["status"])
	assert.Equal(t, "tok_0f8e****6666", data["card_token_masked"])
}

func TestAuthorize_DefaultsToSingleInstallment(t *testing.T) {
	f := setup(t)
	f.authenticated()

	f.payments.EXPECT().Authorize(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, cmd ports.AuthorizeCommand) (*domain.Transaction, error) {
			assert.Equal(t, 1, cmd.Installments)
			return sampleTx(f.merchant.ID, domain.TransactionStatusAuthorized), nil
		})

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"amount": 100, "card_token": "tok_abc",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthorize_ValidationError(t *testing.T) {
	f := setup(t)
	f.authenticated()

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"amount": -1, "card_token": "tok_abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", errorCode(t, w))
}

func TestAuthorize_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"no gateway", apperror.ErrNoAvailableGateway(errors.New("CIELO: timeout")), http.StatusServiceUnavailable, "GW_001"},
		{"declined", apperror.GatewayDeclined("CIELO", "insufficient funds"), http.StatusPaymentRequired, "GW_004"},
		{"monthly cap", apperror.ErrMonthlyLimitExceeded(), http.StatusUnprocessableEntity, "RATE_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.authenticated()
			f.payments.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := f.merchantRequest(http.MethodPost, "/api/v1/payments", map[string]interface{}{
				"amount": 100, "card_token": "tok_abc",
			})
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantErr, errorCode(t, w))
			assert.NotContains(t, w.Body.String(), "timeout")
		})
	}
}

func TestAuthorize_MissingAPIKey(t *testing.T) {
	f := setup(t)
	f.keys.EXPECT().Authenticate(gomock.Any(), "").Return(nil, apperror.ErrMissingAPIKey())

	w := f.do(http.MethodPost, "/api/v1/payments", map[string]interface{}{"amount": 100}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_001", errorCode(t, w))
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestAuthorize_RateLimited(t *testing.T) {
	f := setup(t)
	f.keys.EXPECT().ResolvePlan(gomock.Any(), testKey).Return(domain.PlanFree)
	f.limiter.EXPECT().LimitForPlan(domain.PlanFree).Return(int64(60))
	f.limiter.EXPECT().Check(gomock.Any(), testKey, int64(60)).
		Return(ports.RateLimitDecision{Allowed: false, Limit: 60, Remaining: 0, ResetIn: 12})
	f.audit.EXPECT().Log(gomock.Any(), domain.AuditRateLimitExceeded, domain.UnknownMerchant, gomock.Any())

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments", map[string]interface{}{"amount": 100, "card_token": "tok_abc"})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "12", w.Header().Get("X-RateLimit-Reset"))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["error"])
	assert.EqualValues(t, 12, body["resetIn"])
}

func TestCapture_Success(t *testing.T) {
	f := setup(t)
	f.authenticated()

	tx := sampleTx(f.merchant.ID, domain.TransactionStatusCaptured)
	f.payments.EXPECT().Capture(gomock.Any(), f.merchant.ID, tx.ID, int64(5000)).Return(tx, nil)

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments/"+tx.ID.String()+"/capture", map[string]interface{}{"amount": 5000})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CAPTURED", decodeData(t, w)["status"])
}

func TestCapture_EmptyBodyCapturesFull(t *testing.T) {
	f := setup(t)
	f.authenticated()

	tx := sampleTx(f.merchant.ID, domain.TransactionStatusCaptured)
	f.payments.EXPECT().Capture(gomock.Any(), f.merchant.ID, tx.ID, int64(0)).Return(tx, nil)

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments/"+tx.ID.String()+"/capture", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCapture_InvalidTransition(t *testing.T) {
	f := setup(t)
	f.authenticated()

	id := uuid.New()
	f.payments.EXPECT().Capture(gomock.Any(), f.merchant.ID, id, int64(0)).
		Return(nil, apperror.ErrInvalidTransition("VOIDED", "CAPTURED"))

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments/"+id.String()+"/capture", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "VAL_003", errorCode(t, w))
}

func TestPayment_MalformedID(t *testing.T) {
	f := setup(t)
	f.authenticated()

	w := f.merchantRequest(http.MethodGet, "/api/v1/payments/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NF_001", errorCode(t, w))
}

func TestVoid_SanitizesReason(t *testing.T) {
	f := setup(t)
	f.authenticated()

	tx := sampleTx(f.merchant.ID, domain.TransactionStatusVoided)
	f.payments.EXPECT().Void(gomock.Any(), f.merchant.ID, tx.ID, "&lt;b&gt;duplicate&lt;/b&gt;").Return(tx, nil)

	w := f.merchantRequest(http.MethodPost, "/api/v1/payments/"+tx.ID.String()+"/void", map[string]string{"reason": " <b>duplicate</b> "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "VOIDED", decodeData(t, w)["status"])
}

func TestGetPayment_IncludesGatewayView(t *testing.T) {
	f := setup(t)
	f.authenticated()

	tx := sampleTx(f.merchant.ID, domain.TransactionStatusAuthorized)
	f.payments.EXPECT().Query(gomock.Any(), f.merchant.ID, tx.ID).Return(&ports.PaymentStatus{
		Transaction:   tx,
		GatewayStatus: domain.TransactionStatusCaptured,
	}, nil)

	w := f.merchantRequest(http.MethodGet, "/api/v1/payments/"+tx.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "AUTHORIZED", data["status"])
	assert.Equal(t, "CAPTURED", data["gateway_status"])
	assert.NotContains(t, data, "gateway_error")
}

func TestGetPayment_ForeignMerchantIsNotFound(t *testing.T) {
	f := setup(t)
	f.authenticated()

	id := uuid.New()
	f.payments.EXPECT().Query(gomock.Any(), f.merchant.ID, id).Return(nil, apperror.ErrNotFound("Transaction"))

	w := f.merchantRequest(http.MethodGet, "/api/v1/payments/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Tokens ---

func TestTokenize_Success(t *testing.T) {
	f := setup(t)
	f.authenticated()
	f.tokens.EXPECT().Tokenize(gomock.Any(), f.merchant.ID, "4111111111111111").Return("tok_123", nil)

	w := f.merchantRequest(http.MethodPost, "/api/v1/tokens", map[string]string{"value": "4111111111111111"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tok_123", decodeData(t, w)["token"])
}

func TestTokenize_InvalidValueIsNotEchoed(t *testing.T) {
	f := setup(t)
	f.authenticated()

	w := f.merchantRequest(http.MethodPost, "/api/v1/tokens", map[string]string{"value": "4111-1111-1111"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "4111")
}

func TestDetokenize_Forbidden(t *testing.T) {
	f := setup(t)
	f.authenticated()
	f.tokens.EXPECT().Detokenize(gomock.Any(), f.merchant.ID, "tok_other").
		Return("", apperror.ErrForbidden("Token belongs to another merchant"))

	w := f.merchantRequest(http.MethodPost, "/api/v1/tokens/detokenize", map[string]string{"token": "tok_other"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_005", errorCode(t, w))
}

func TestDetokenize_Success(t *testing.T) {
	f := setup(t)
	f.authenticated()
	f.tokens.EXPECT().Detokenize(gomock.Any(), f.merchant.ID, "tok_123").Return("4111111111111111", nil)

	w := f.merchantRequest(http.MethodPost, "/api/v1/tokens/detokenize", map[string]string{"token": "tok_123"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4111111111111111", decodeData(t, w)["value"])
}

// --- Webhooks ---

func TestGetWebhook_Success(t *testing.T) {
	f := setup(t)
	f.authenticated()

	msg := "delivery failed after 5 attempts: HTTP 500"
	ev := &domain.WebhookEvent{
		ID:            uuid.New(),
		TransactionID: uuid.New(),
		MerchantID:    f.merchant.ID,
		EventType:     domain.WebhookEventCaptured,
		Status:        domain.WebhookStatusFailed,
		Attempts:      5,
		MaxAttempts:   5,
		ErrorMessage:  &msg,
		CreatedAt:     time.Now(),
	}
	f.webhooks.EXPECT().GetEvent(gomock.Any(), f.merchant.ID, ev.ID).Return(ev, nil)

	w := f.merchantRequest(http.MethodGet, "/api/v1/webhooks/"+ev.ID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "FAILED", data["status"])
	assert.EqualValues(t, 5, data["attempts"])
	assert.Equal(t, msg, data["error_message"])
	assert.Equal(t, "transaction.captured", data["event_type"])
}

// --- Administration ---

func TestAdmin_RequiresToken(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/v1/admin/gateways", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_ListGateways(t *testing.T) {
	f := setup(t)
	f.admin.EXPECT().ListGateways(gomock.Any()).Return([]ports.GatewayView{
		{Gateway: domain.Gateway{Code: "CIELO", Status: domain.GatewayStatusActive, HealthStatus: domain.HealthStatusUp}, Registered: true},
	}, nil)

	w := f.adminRequest(http.MethodGet, "/api/v1/admin/gateways", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "CIELO", resp.Data[0]["code"])
	assert.Equal(t, true, resp.Data[0]["registered"])
}

func TestAdmin_SetHealth(t *testing.T) {
	f := setup(t)
	f.admin.EXPECT().SetHealth(gomock.Any(), "rede", domain.HealthStatusDown).Return(nil)

	w := f.adminRequest(http.MethodPut, "/api/v1/admin/gateways/rede/health", map[string]string{"health": "DOWN"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REDE", decodeData(t, w)["code"])
}

func TestAdmin_SetHealthRejectsUnknownValue(t *testing.T) {
	f := setup(t)

	w := f.adminRequest(http.MethodPut, "/api/v1/admin/gateways/rede/health", map[string]string{"health": "DEGRADED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdmin_SetStatusUnknownGateway(t *testing.T) {
	f := setup(t)
	f.admin.EXPECT().SetStatus(gomock.Any(), "ACME", domain.GatewayStatusInactive).Return(apperror.ErrNotFound("Gateway"))

	w := f.adminRequest(http.MethodPut, "/api/v1/admin/gateways/ACME/status", map[string]string{"status": "INACTIVE"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_ResetVolumes(t *testing.T) {
	f := setup(t)
	f.admin.EXPECT().ResetDailyVolume(gomock.Any()).Return(int64(4), nil)
	f.admin.EXPECT().ResetMonthlyVolume(gomock.Any()).Return(int64(17), nil)

	w := f.adminRequest(http.MethodPost, "/api/v1/admin/gateways/reset-daily-volume", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 4, decodeData(t, w)["updated"])

	w = f.adminRequest(http.MethodPost, "/api/v1/admin/merchants/reset-monthly-volume", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 17, decodeData(t, w)["updated"])
}

func TestAdmin_IssueKey(t *testing.T) {
	f := setup(t)
	merchantID := uuid.New()
	expires := time.Now().Add(720 * time.Hour)
	issued := &ports.IssuedKey{
		Key: &domain.APIKey{
			ID: uuid.New(), MerchantID: merchantID, Prefix: "pk_abcdefghi",
			Status: domain.APIKeyStatusActive, CreatedAt: time.Now(), ExpiresAt: &expires,
		},
		RawKey: "pk_abcdefghijklmnop",
	}
	f.keys.EXPECT().Issue(gomock.Any(), merchantID, 720*time.Hour).Return(issued, nil)

	w := f.adminRequest(http.MethodPost, "/api/v1/admin/merchants/"+merchantID.String()+"/api-keys", map[string]string{"ttl": "720h"})

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "pk_abcdefghijklmnop", data["key"])
	assert.Equal(t, merchantID.String(), data["merchant_id"])
	assert.NotEmpty(t, data["expires_at"])
}

func TestAdmin_IssueKeyRejectsBadTTL(t *testing.T) {
	f := setup(t)

	w := f.adminRequest(http.MethodPost, "/api/v1/admin/merchants/"+uuid.NewString()+"/api-keys", map[string]string{"ttl": "-1h"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdmin_RotateAndRevokeKey(t *testing.T) {
	f := setup(t)
	merchantID, keyID := uuid.New(), uuid.New()
	f.keys.EXPECT().Rotate(gomock.Any(), merchantID, keyID).Return(&ports.IssuedKey{
		Key:    &domain.APIKey{ID: uuid.New(), MerchantID: merchantID, Status: domain.APIKeyStatusActive},
		RawKey: "pk_new",
	}, nil)
	f.keys.EXPECT().Revoke(gomock.Any(), merchantID, keyID).Return(nil)

	base := "/api/v1/admin/merchants/" + merchantID.String() + "/api-keys/" + keyID.String()

	w := f.adminRequest(http.MethodPost, base+"/rotate", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pk_new", decodeData(t, w)["key"])

	w = f.adminRequest(http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REVOKED", decodeData(t, w)["status"])
}

// --- Health ---

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		f := setup(t)
		f.health.EXPECT().Ping(gomock.Any()).Return(nil)
		f.health.EXPECT().Name().Return("postgres")
		f.gateways.EXPECT().ListSupportedCodes().Return([]string{"CIELO", "STRIPE"})
		f.gateways.EXPECT().CountAdapters().Return(2)

		w := f.do(http.MethodGet, "/health", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Len(t, body["gateways"], 2)
	})

	t.Run("dependency down", func(t *testing.T) {
		f := setup(t)
		f.health.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
		f.health.EXPECT().Name().Return("redis")
		f.gateways.EXPECT().ListSupportedCodes().Return([]string{"CIELO"})
		f.gateways.EXPECT().CountAdapters().Return(1)

		w := f.do(http.MethodGet, "/health", nil, nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})

	t.Run("no adapters", func(t *testing.T) {
		f := setup(t)
		f.health.EXPECT().Ping(gomock.Any()).Return(nil)
		f.health.EXPECT().Name().Return("postgres")
		f.gateways.EXPECT().ListSupportedCodes().Return(nil)
		f.gateways.EXPECT().CountAdapters().Return(0)

		w := f.do(http.MethodGet, "/health", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
