package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"payment-orchestrator/internal/core/domain"
	"payment-orchestrator/internal/core/ports"
	"payment-orchestrator/pkg/apperror"
	"payment-orchestrator/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxInstallments bounds the installment count of one authorization.
const MaxInstallments = 12

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	merchantRepo ports.MerchantRepository
	txRepo       ports.TransactionRepository
	router       ports.GatewayRouter
	webhooks     ports.WebhookService
	audit        ports.AuditTrail
	timeout      time.Duration
	log          zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. timeout bounds capture,
// void and query calls; authorizations use the router's own bound.
func NewPaymentService(
	merchantRepo ports.MerchantRepository,
	txRepo ports.TransactionRepository,
	router ports.GatewayRouter,
	webhooks ports.WebhookService,
	audit ports.AuditTrail,
	timeout time.Duration,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		merchantRepo: merchantRepo,
		txRepo:       txRepo,
		router:       router,
		webhooks:     webhooks,
		audit:        audit,
		timeout:      timeout,
		log:          log,
	}
}

// Authorize reserves the merchant's monthly volume, routes the payment with
// failover and persists the outcome.
func (s *PaymentServiceImpl) Authorize(ctx context.Context, req ports.AuthorizeCommand) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Installments < 1 || req.Installments > MaxInstallments {
		return nil, apperror.Validation(fmt.Sprintf("installments must be between 1 and %d", MaxInstallments))
	}
	if req.CardToken == "" {
		return nil, apperror.Validation("card token is required")
	}

	merchant, err := s.merchantRepo.GetByID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}

	limit, _ := merchant.Plan.MonthlyCap()
	reserved, err := s.merchantRepo.ReserveMonthlyVolume(ctx, merchant.ID, req.Amount, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("reserve monthly volume: %w", err))
	}
	if !reserved {
		return nil, apperror.ErrMonthlyLimitExceeded()
	}

	log := logger.For(ctx, s.log)
	routing, routeErr := s.router.SelectForRouting(ctx, ports.AuthorizeRequest{
		Amount:       req.Amount,
		CardToken:    req.CardToken,
		CVV:          req.CVV,
		Installments: req.Installments,
	})
	if routeErr != nil {
		s.releaseMonthly(ctx, merchant.ID, req.Amount)
		if routing != nil && apperror.Is(routeErr, apperror.KindPermanent) {
			s.recordDecline(ctx, req, routing.GatewayCode, routeErr)
		}
		return nil, routeErr
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:               uuid.New(),
		MerchantID:       merchant.ID,
		GatewayCode:      routing.GatewayCode,
		GatewayReference: routing.Result.Reference,
		Amount:           req.Amount,
		Installments:     req.Installments,
		CardTokenMasked:  domain.MaskToken(req.CardToken),
		Status:           domain.TransactionStatusAuthorized,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.txRepo.Create(ctx, txn); err != nil {
		log.Error().Err(err).Str("gateway", routing.GatewayCode).Msg("authorized at gateway but failed to persist, voiding")
		s.compensate(ctx, routing)
		s.releaseMonthly(ctx, merchant.ID, req.Amount)
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create transaction: %w", err))
	}

	s.audit.Log(ctx, domain.AuditGatewayRouted, merchant.ID.String(), map[string]string{
		"transactionId": txn.ID.String(),
		"gateway":       txn.GatewayCode,
		"attempts":      strconv.Itoa(routing.Attempts),
		"amount":        strconv.FormatInt(txn.Amount, 10),
		"cardToken":     txn.CardTokenMasked,
	})
	s.webhooks.Notify(ctx, txn)

	log.Info().Str("tx_id", txn.ID.String()).Str("gateway", txn.GatewayCode).Int64("amount", txn.Amount).Msg("payment authorized")
	return txn, nil
}

// Capture settles an authorized transaction at the gateway that authorized
// it. A zero amount captures the full authorization.
func (s *PaymentServiceImpl) Capture(ctx context.Context, merchantID uuid.UUID, txID uuid.UUID, amount int64) (*domain.Transaction, error) {
	txn, err := s.ownedTransaction(ctx, merchantID, txID)
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		amount = txn.Amount
	}
	if amount < 0 || amount > txn.Amount {
		return nil, apperror.ErrInvalidAmount()
	}

	return s.transition(ctx, txn, domain.TransactionStatusCaptured, domain.AuditPaymentCaptured,
		func(ctx context.Context, a ports.GatewayAdapter) error {
			_, err := a.Capture(ctx, txn.GatewayReference, amount)
			return err
		},
		map[string]string{"amount": strconv.FormatInt(amount, 10)},
	)
}

// Void cancels an authorized or captured transaction and returns its amount
// to the merchant's monthly allowance.
func (s *PaymentServiceImpl) Void(ctx context.Context, merchantID uuid.UUID, txID uuid.UUID, reason string) (*domain.Transaction, error) {
	txn, err := s.ownedTransaction(ctx, merchantID, txID)
	if err != nil {
		return nil, err
	}

	voided, err := s.transition(ctx, txn, domain.TransactionStatusVoided, domain.AuditPaymentVoided,
		func(ctx context.Context, a ports.GatewayAdapter) error {
			_, err := a.Void(ctx, txn.GatewayReference, reason)
			return err
		},
		map[string]string{"reason": reason},
	)
	if err != nil {
		return nil, err
	}
	s.releaseMonthly(ctx, voided.MerchantID, voided.Amount)
	return voided, nil
}

// Query returns the stored transaction together with the gateway's view.
// Gateway errors are reported in the result, not returned.
func (s *PaymentServiceImpl) Query(ctx context.Context, merchantID uuid.UUID, txID uuid.UUID) (*ports.PaymentStatus, error) {
	txn, err := s.ownedTransaction(ctx, merchantID, txID)
	if err != nil {
		return nil, err
	}

	status := &ports.PaymentStatus{Transaction: txn, GatewayStatus: txn.Status}
	if txn.GatewayReference == "" {
		return status, nil
	}

	adapter, err := s.router.GetAdapter(txn.GatewayCode)
	if err != nil {
		status.GatewayError = err.Error()
		return status, nil
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()
	result, err := adapter.Query(callCtx, txn.GatewayReference)
	if err != nil {
		status.GatewayError = err.Error()
		return status, nil
	}
	status.GatewayStatus = result.Status
	return status, nil
}

func (s *PaymentServiceImpl) ownedTransaction(ctx context.Context, merchantID, txID uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if txn == nil || txn.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("transaction")
	}
	return txn, nil
}

// transition calls the authorizing gateway, then moves the stored status
// forward only if no concurrent request moved it first.
func (s *PaymentServiceImpl) transition(
	ctx context.Context,
	txn *domain.Transaction,
	to domain.TransactionStatus,
	auditType domain.AuditEventType,
	call func(context.Context, ports.GatewayAdapter) error,
	auditData map[string]string,
) (*domain.Transaction, error) {
	from := txn.Status
	if !from.CanTransitionTo(to) {
		return nil, apperror.ErrInvalidTransition(string(from), string(to))
	}

	adapter, err := s.router.GetAdapter(txn.GatewayCode)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := s.bounded(ctx)
	err = call(callCtx, adapter)
	cancel()
	if err != nil {
		return nil, err
	}

	ok, err := s.txRepo.UpdateStatus(ctx, txn.ID, from, to)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !ok {
		return nil, apperror.ErrInvalidTransition(string(from), string(to))
	}
	txn.Status = to
	txn.UpdatedAt = time.Now().UTC()

	data := map[string]string{
		"transactionId": txn.ID.String(),
		"gateway":       txn.GatewayCode,
	}
	for k, v := range auditData {
		data[k] = v
	}
	s.audit.Log(ctx, auditType, txn.MerchantID.String(), data)
	s.webhooks.Notify(ctx, txn)

	log := logger.For(ctx, s.log)

	log.Info().Str("tx_id", txn.ID.String()).Str("status", string(to)).Msg("transaction updated")
	return txn, nil
}

// recordDecline persists a FAILED transaction for a permanent gateway
// decline so the merchant can be notified.
func (s *PaymentServiceImpl) recordDecline(ctx context.Context, req ports.AuthorizeCommand, gatewayCode string, cause error) {
	reason := cause.Error()
	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:              uuid.New(),
		MerchantID:      req.MerchantID,
		GatewayCode:     gatewayCode,
		Amount:          req.Amount,
		Installments:    req.Installments,
		CardTokenMasked: domain.MaskToken(req.CardToken),
		Status:          domain.TransactionStatusFailed,
		FailureReason:   &reason,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.txRepo.Create(ctx, txn); err != nil {
		s.log.Error().Err(err).Str("gateway", gatewayCode).Msg("failed to persist declined transaction")
		return
	}
	s.webhooks.Notify(ctx, txn)
}

// compensate voids an authorization that could not be persisted.
func (s *PaymentServiceImpl) compensate(ctx context.Context, routing *ports.RoutingResult) {
	adapter, err := s.router.GetAdapter(routing.GatewayCode)
	if err != nil {
		return
	}
	callCtx, cancel := s.bounded(context.WithoutCancel(ctx))
	defer cancel()
	if _, err := adapter.Void(callCtx, routing.Result.Reference, "persistence failure"); err != nil {
		s.log.Error().Err(err).Str("gateway", routing.GatewayCode).Str("reference", routing.Result.Reference).
			Msg("compensating void failed, manual reconciliation required")
	}
}

func (s *PaymentServiceImpl) releaseMonthly(ctx context.Context, merchantID uuid.UUID, amount int64) {
	if err := s.merchantRepo.ReleaseMonthlyVolume(context.WithoutCancel(ctx), merchantID, amount); err != nil {
		s.log.Error().Err(err).Str("merchant_id", merchantID.String()).Int64("amount", amount).Msg("failed to release monthly volume")
	}
}

func (s *PaymentServiceImpl) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
