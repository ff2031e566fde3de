package handler

import (
	"payment-orchestrator/internal/adapter/http/dto"
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WebhookHandler exposes webhook delivery state to merchants.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Get handles GET /api/v1/webhooks/:id.
func (h *WebhookHandler) Get(c *gin.Context) {
	merchantID, ok := middleware.MerchantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrMissingAPIKey())
		return
	}
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("Webhook event"))
		return
	}

	event, err := h.webhookSvc.GetEvent(c.Request.Context(), merchantID, eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWebhookEventResponse(event))
}
