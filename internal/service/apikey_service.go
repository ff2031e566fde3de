package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// APIKeyPrefix starts every raw merchant API key.
const APIKeyPrefix = "pk_"

// APIKeyServiceImpl implements ports.APIKeyService.
type APIKeyServiceImpl struct {
	keyRepo      ports.APIKeyRepository
	merchantRepo ports.MerchantRepository
	transactor   ports.DBTransactor
	sigSvc       ports.SignatureService
	audit        ports.AuditTrail
	pepper       string
	log          zerolog.Logger
	now          func() time.Time
}

// NewAPIKeyService creates a new APIKeyServiceImpl. Stored key hashes are
// HMAC-SHA256 of the raw key under pepper.
func NewAPIKeyService(
	keyRepo ports.APIKeyRepository,
	merchantRepo ports.MerchantRepository,
	transactor ports.DBTransactor,
	sigSvc ports.SignatureService,
	audit ports.AuditTrail,
	pepper string,
	log zerolog.Logger,
) *APIKeyServiceImpl {
	return &APIKeyServiceImpl{
		keyRepo:      keyRepo,
		merchantRepo: merchantRepo,
		transactor:   transactor,
		sigSvc:       sigSvc,
		audit:        audit,
		pepper:       pepper,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// HashKey returns the lookup hash stored for rawKey.
func (s *APIKeyServiceImpl) HashKey(rawKey string) string {
	return s.sigSvc.Sign(s.pepper, rawKey)
}

// Issue creates a new ACTIVE key for the merchant. A ttl of zero means the
// key never expires.
func (s *APIKeyServiceImpl) Issue(ctx context.Context, merchantID uuid.UUID, ttl time.Duration) (*ports.IssuedKey, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}

	issued, err := s.newKey(merchantID, ttl)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if err := s.keyRepo.Create(ctx, dbTx, issued.Key); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create api key: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit.Log(ctx, domain.AuditAPIKeyCreated, merchantID.String(), map[string]string{
		"keyId":  issued.Key.ID.String(),
		"apiKey": domain.MaskKey(issued.RawKey),
	})
	return issued, nil
}

// Rotate issues a replacement key and revokes the old one in the same
// database transaction. The replacement inherits the remaining lifetime.
func (s *APIKeyServiceImpl) Rotate(ctx context.Context, merchantID uuid.UUID, keyID uuid.UUID) (*ports.IssuedKey, error) {
	old, err := s.ownedKey(ctx, merchantID, keyID)
	if err != nil {
		return nil, err
	}
	if old.Status != domain.APIKeyStatusActive {
		return nil, apperror.ErrAPIKeyRevoked()
	}

	now := s.now()
	var ttl time.Duration
	if old.ExpiresAt != nil {
		ttl = old.ExpiresAt.Sub(now)
		if ttl <= 0 {
			return nil, apperror.ErrAPIKeyRevoked()
		}
	}

	issued, err := s.newKey(merchantID, ttl)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = dbTx.Rollback(ctx) }()

	if err := s.keyRepo.UpdateStatus(ctx, dbTx, old.ID, domain.APIKeyStatusRevoked, &now); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("revoke old key: %w", err))
	}
	if err := s.keyRepo.Create(ctx, dbTx, issued.Key); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create api key: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.audit.Log(ctx, domain.AuditAPIKeyRotated, merchantID.String(), map[string]string{
		"oldKeyId": old.ID.String(),
		"keyId":    issued.Key.ID.String(),
		"apiKey":   domain.MaskKey(issued.RawKey),
	})
	return issued, nil
}

// Revoke disables a key permanently. Revoking an already revoked key is a
// no-op.
func (s *APIKeyServiceImpl) Revoke(ctx context.Context, merchantID uuid.UUID, keyID uuid.UUID) error {
	key, err := s.ownedKey(ctx, merchantID, keyID)
	if err != nil {
		return err
	}
	if key.Status == domain.APIKeyStatusRevoked {
		return nil
	}

	if err := s.updateStatus(ctx, key.ID, domain.APIKeyStatusRevoked, nil); err != nil {
		return err
	}

	s.audit.Log(ctx, domain.AuditAPIKeyRevoked, merchantID.String(), map[string]string{
		"keyId":  key.ID.String(),
		"prefix": key.Prefix,
	})
	return nil
}

// Authenticate resolves a raw key to its key row and merchant. Lookups are
// not cached, so a revocation applies to the very next request.
func (s *APIKeyServiceImpl) Authenticate(ctx context.Context, rawKey string) (*ports.Principal, error) {
	if rawKey == "" {
		return nil, apperror.ErrMissingAPIKey()
	}

	key, err := s.keyRepo.GetByHash(ctx, s.HashKey(rawKey))
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if key == nil {
		s.denied(ctx, domain.UnknownMerchant, rawKey, "unknown key")
		return nil, apperror.ErrInvalidAPIKey()
	}

	now := s.now()
	if key.Status == domain.APIKeyStatusActive && key.IsExpired(now) {
		if err := s.updateStatus(ctx, key.ID, domain.APIKeyStatusExpired, nil); err != nil {
			log := logger.For(ctx, s.log)
			log.Error().Err(err).Str("key_id", key.ID.String()).Msg("failed to mark api key expired")
		}
		s.audit.Log(ctx, domain.AuditAPIKeyExpired, key.MerchantID.String(), map[string]string{
			"keyId":  key.ID.String(),
			"apiKey": domain.MaskKey(rawKey),
		})
		return nil, apperror.ErrAPIKeyRevoked()
	}
	if !key.IsUsable(now) {
		s.denied(ctx, key.MerchantID.String(), rawKey, "key "+string(key.Status))
		return nil, apperror.ErrAPIKeyRevoked()
	}

	merchant, err := s.merchantRepo.GetByID(ctx, key.MerchantID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if merchant == nil {
		s.denied(ctx, key.MerchantID.String(), rawKey, "merchant missing")
		return nil, apperror.ErrInvalidAPIKey()
	}
	if !merchant.IsActive() {
		s.denied(ctx, merchant.ID.String(), rawKey, "merchant "+string(merchant.Status))
		return nil, apperror.ErrMerchantSuspended()
	}

	return &ports.Principal{Key: key, Merchant: merchant}, nil
}

// ResolvePlan returns the plan of the key's merchant, FREE when the key or
// merchant cannot be resolved.
func (s *APIKeyServiceImpl) ResolvePlan(ctx context.Context, rawKey string) domain.Plan {
	key, err := s.keyRepo.GetByHash(ctx, s.HashKey(rawKey))
	if err != nil || key == nil {
		return domain.PlanFree
	}
	merchant, err := s.merchantRepo.GetByID(ctx, key.MerchantID)
	if err != nil || merchant == nil {
		return domain.PlanFree
	}
	if _, ok := domain.ParsePlan(string(merchant.Plan)); !ok {
		return domain.PlanFree
	}
	return merchant.Plan
}

func (s *APIKeyServiceImpl) newKey(merchantID uuid.UUID, ttl time.Duration) (*ports.IssuedKey, error) {
	raw, err := generateRandomHex(32) // 64 hex chars
	if err != nil {
		return nil, apperror.ErrKeyGeneration(err)
	}
	raw = APIKeyPrefix + raw

	now := s.now()
	key := &domain.APIKey{
		ID:         uuid.New(),
		KeyHash:    s.HashKey(raw),
		Prefix:     raw[:12],
		MerchantID: merchantID,
		Status:     domain.APIKeyStatusActive,
		CreatedAt:  now,
	}
	if ttl > 0 {
		exp := now.Add(ttl)
		key.ExpiresAt = &exp
	}
	return &ports.IssuedKey{Key: key, RawKey: raw}, nil
}

func (s *APIKeyServiceImpl) requireMerchant(ctx context.Context, merchantID uuid.UUID) error {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if merchant == nil {
		return apperror.ErrNotFound("merchant")
	}
	return nil
}

func (s *APIKeyServiceImpl) ownedKey(ctx context.Context, merchantID, keyID uuid.UUID) (*domain.APIKey, error) {
	key, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if key == nil || key.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("api key")
	}
	return key, nil
}

// updateStatus runs a single-row status change on the pool.
func (s *APIKeyServiceImpl) updateStatus(ctx context.Context, id uuid.UUID, status domain.APIKeyStatus, rotatedAt *time.Time) error {
	if err := s.keyRepo.UpdateStatus(ctx, nil, id, status, rotatedAt); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *APIKeyServiceImpl) denied(ctx context.Context, merchantID, rawKey, reason string) {
	s.audit.Log(ctx, domain.AuditUnauthorizedAccess, merchantID, map[string]string{
		"apiKey": domain.MaskKey(rawKey),
		"reason": reason,
	})
}

// generateRandomHex generates a random hex string of n bytes.
func generateRandomHex(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
