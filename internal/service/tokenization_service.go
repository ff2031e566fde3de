package service

import (
	"context"
	"strings"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenPrefix starts every vault reference handed to merchants.
const TokenPrefix = "tok_"

// TokenizationServiceImpl implements ports.TokenizationService.
type TokenizationServiceImpl struct {
	vault ports.TokenVault
	audit ports.AuditTrail
	log   zerolog.Logger
}

// NewTokenizationService creates a new TokenizationServiceImpl.
func NewTokenizationService(vault ports.TokenVault, audit ports.AuditTrail, log zerolog.Logger) *TokenizationServiceImpl {
	return &TokenizationServiceImpl{vault: vault, audit: audit, log: log}
}

// Tokenize stores pan in the vault and returns its opaque reference.
func (s *TokenizationServiceImpl) Tokenize(ctx context.Context, merchantID uuid.UUID, pan string) (string, error) {
	pan = strings.TrimSpace(pan)
	if !validPAN(pan) {
		return "", apperror.Validation("card number must be 12 to 19 digits")
	}

	token := TokenPrefix + uuid.NewString()
	entry := ports.VaultEntry{MerchantID: merchantID, Value: pan}
	if err := s.vault.Store(ctx, token, entry); err != nil {
		log := logger.For(ctx, s.log)
		log.Error().Err(err).Msg("vault store failed")
		s.audit.Log(ctx, domain.AuditTokenizationFailed, merchantID.String(), map[string]string{
			"card":  domain.MaskToken(pan),
			"error": "vault unavailable",
		})
		return "", apperror.ErrVaultFailure(err)
	}

	s.audit.Log(ctx, domain.AuditTokenization, merchantID.String(), map[string]string{
		"token": domain.MaskToken(token),
		"card":  domain.MaskToken(pan),
	})
	return token, nil
}

// Detokenize returns the value behind token. Only the merchant that created
// the token may read it.
func (s *TokenizationServiceImpl) Detokenize(ctx context.Context, merchantID uuid.UUID, token string) (string, error) {
	token = strings.TrimSpace(token)
	if !strings.HasPrefix(token, TokenPrefix) {
		return "", apperror.Validation("invalid token format")
	}
	masked := domain.MaskToken(token)

	entry, err := s.vault.Load(ctx, token)
	if err != nil {
		log := logger.For(ctx, s.log)
		log.Error().Err(err).Msg("vault load failed")
		s.audit.Log(ctx, domain.AuditDetokenizationFailed, merchantID.String(), map[string]string{
			"token": masked,
			"error": "vault unavailable",
		})
		return "", apperror.ErrVaultFailure(err)
	}
	if entry == nil {
		s.audit.Log(ctx, domain.AuditDetokenizationFailed, merchantID.String(), map[string]string{
			"token": masked,
			"error": "not found",
		})
		return "", apperror.ErrNotFound("token")
	}
	if entry.MerchantID != merchantID {
		s.audit.Log(ctx, domain.AuditUnauthorizedDetokenization, merchantID.String(), map[string]string{
			"token": masked,
			"owner": entry.MerchantID.String(),
		})
		return "", apperror.ErrForbidden("Token belongs to another merchant")
	}

	s.audit.Log(ctx, domain.AuditDetokenization, merchantID.String(), map[string]string{
		"token": masked,
	})
	return entry.Value, nil
}

func validPAN(pan string) bool {
	if len(pan) < 12 || len(pan) > 19 {
		return false
	}
	for _, c := range pan {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
