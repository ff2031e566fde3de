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

// PaymentHandler handles payment-related endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// Authorize handles POST /api/v1/payments.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	merchantID, ok := middleware.MerchantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrMissingAPIKey())
		return
	}

	var req dto.AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Installments == 0 {
		req.Installments = 1
	}

	tx, err := h.paymentSvc.Authorize(c.Request.Context(), ports.AuthorizeCommand{
		MerchantID:   merchantID,
		Amount:       req.Amount,
		CardToken:    req.CardToken,
		CVV:          req.CVV,
		Installments: req.Installments,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewTransactionResponse(tx))
}

// Capture handles POST /api/v1/payments/:id/capture.
func (h *PaymentHandler) Capture(c *gin.Context) {
	merchantID, txID, ok := paymentTarget(c)
	if !ok {
		return
	}

	var req dto.CaptureRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}

	tx, err := h.paymentSvc.Capture(c.Request.Context(), merchantID, txID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewTransactionResponse(tx))
}

// Void handles POST /api/v1/payments/:id/void.
func (h *PaymentHandler) Void(c *gin.Context) {
	merchantID, txID, ok := paymentTarget(c)
	if !ok {
		return
	}

	var req dto.VoidRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	tx, err := h.paymentSvc.Void(c.Request.Context(), merchantID, txID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewTransactionResponse(tx))
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	merchantID, txID, ok := paymentTarget(c)
	if !ok {
		return
	}

	status, err := h.paymentSvc.Query(c.Request.Context(), merchantID, txID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewPaymentStatusResponse(status))
}

// paymentTarget resolves the caller and the :id path parameter, writing the
// error response itself when either is missing.
func paymentTarget(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	merchantID, ok := middleware.MerchantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrMissingAPIKey())
		return uuid.Nil, uuid.Nil, false
	}
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound("Transaction"))
		return uuid.Nil, uuid.Nil, false
	}
	return merchantID, txID, true
}
