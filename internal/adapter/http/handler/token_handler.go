package handler

import (
	"payment-orchestrator/internal/adapter/http/dto"
	"payment-orchestrator/internal/adapter/http/middleware"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler exposes card tokenization to merchants.
type TokenHandler struct {
	tokenSvc ports.TokenizationService
}

func NewTokenHandler(tokenSvc ports.TokenizationService) *TokenHandler {
	return &TokenHandler{tokenSvc: tokenSvc}
}

// Tokenize handles POST /api/v1/tokens.
func (h *TokenHandler) Tokenize(c *gin.Context) {
	merchantID, ok := middleware.MerchantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrMissingAPIKey())
		return
	}

	var req dto.TokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The binding error echoes the field value; never return a PAN.
		response.Error(c, apperror.Validation("value must be 12 to 19 digits"))
		return
	}

	token, err := h.tokenSvc.Tokenize(c.Request.Context(), merchantID, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TokenizeResponse{Token: token})
}

// Detokenize handles POST /api/v1/tokens/detokenize.
func (h *TokenHandler) Detokenize(c *gin.Context) {
	merchantID, ok := middleware.MerchantFrom(c)
	if !ok {
		response.Error(c, apperror.ErrMissingAPIKey())
		return
	}

	var req dto.DetokenizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	value, err := h.tokenSvc.Detokenize(c.Request.Context(), merchantID, req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DetokenizeResponse{Value: value})
}
