package handler

import (
	"time"

	"payment-orchestrator/internal/adapter/http/dto"
	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the operator endpoints used by the health checker and
// the volume reset jobs.
type AdminHandler struct {
	adminSvc ports.GatewayAdminService
	keySvc   ports.APIKeyService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.GatewayAdminService, keySvc ports.APIKeyService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, keySvc: keySvc}
}

// ListGateways handles GET /api/v1/admin/gateways.
func (h *AdminHandler) ListGateways(c *gin.Context) {
	views, err := h.adminSvc.ListGateways(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, views)
}

// SetHealth handles PUT /api/v1/admin/gateways/:code/health.
func (h *AdminHandler) SetHealth(c *gin.Context) {
	var req dto.SetHealthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	code := c.Param("code")
	if err := h.adminSvc.SetHealth(c.Request.Context(), code, domain.HealthStatus(req.Health)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"code": domain.NormalizeGatewayCode(code), "health": req.Health})
}

// SetStatus handles PUT /api/v1/admin/gateways/:code/status.
func (h *AdminHandler) SetStatus(c *gin.Context) {
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	code := c.Param("code")
	if err := h.adminSvc.SetStatus(c.Request.Context(), code, domain.GatewayStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"code": domain.NormalizeGatewayCode(code), "status": req.Status})
}

// ResetDailyVolume handles POST /api/v1/admin/gateways/reset-daily-volume.
func (h *AdminHandler) ResetDailyVolume(c *gin.Context) {
	n, err := h.adminSvc.ResetDailyVolume(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ResetVolumeResponse{Updated: n})
}

// ResetMonthlyVolume handles POST /api/v1/admin/merchants/reset-monthly-volume.
func (h *AdminHandler) ResetMonthlyVolume(c *gin.Context) {
	n, err := h.adminSvc.ResetMonthlyVolume(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ResetVolumeResponse{Updated: n})
}

// IssueKey handles POST /api/v1/admin/merchants/:id/api-keys.
func (h *AdminHandler) IssueKey(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("Merchant"))
		return
	}

	var req dto.IssueKeyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	var ttl time.Duration
	if req.TTL != "" {
		ttl, err = time.ParseDuration(req.TTL)
		if err != nil || ttl <= 0 {
			response.Error(c, apperror.Validation("ttl must be a positive duration"))
			return
		}
	}

	issued, err := h.keySvc.Issue(c.Request.Context(), merchantID, ttl)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewIssuedKeyResponse(issued))
}

// RotateKey handles POST /api/v1/admin/merchants/:id/api-keys/:keyId/rotate.
func (h *AdminHandler) RotateKey(c *gin.Context) {
	merchantID, keyID, ok := keyTarget(c)
	if !ok {
		return
	}

	issued, err := h.keySvc.Rotate(c.Request.Context(), merchantID, keyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewIssuedKeyResponse(issued))
}

// RevokeKey handles DELETE /api/v1/admin/merchants/:id/api-keys/:keyId.
func (h *AdminHandler) RevokeKey(c *gin.Context) {
	merchantID, keyID, ok := keyTarget(c)
	if !ok {
		return
	}

	if err := h.keySvc.Revoke(c.Request.Context(), merchantID, keyID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": keyID.String(), "status": string(domain.APIKeyStatusRevoked)})
}

func keyTarget(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	merchantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("Merchant"))
		return uuid.Nil, uuid.Nil, false
	}
	keyID, err := uuid.Parse(c.Param("keyId"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("API key"))
		return uuid.Nil, uuid.Nil, false
	}
	return merchantID, keyID, true
}
