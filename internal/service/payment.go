package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clash-arena/internal/config"
	"clash-arena/internal/gateway"
	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	"clash-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type PaymentServiceImpl struct {
	paymentRepo     repository.PaymentRepository
	participantRepo repository.ParticipantRepository
	tournamentRepo  repository.TournamentRepository
	ledger          LedgerService
	dbManager       repository.DBManager
	provider        gateway.Provider
	sink            notify.Sink
	cfg             config.PaymentConfig
	callbackURL     string
	logger          zerolog.Logger
}

var _ PaymentService = (*PaymentServiceImpl)(nil)

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	participantRepo repository.ParticipantRepository,
	tournamentRepo repository.TournamentRepository,
	ledger LedgerService,
	dbManager repository.DBManager,
	provider gateway.Provider,
	sink notify.Sink,
	cfg config.PaymentConfig,
	callbackURL string,
	logger zerolog.Logger,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:     paymentRepo,
		participantRepo: participantRepo,
		tournamentRepo:  tournamentRepo,
		ledger:          ledger,
		dbManager:       dbManager,
		provider:        provider,
		sink:            sink,
		cfg:             cfg,
		callbackURL:     callbackURL,
		logger:          logger,
	}
}

// creditAmount returns the wallet credit a completed payment carries.
// Deposits credit the amount after fees; prizes and bonuses credit the full
// amount. Everything else moves no money on completion.
func creditAmount(p *model.Payment) (decimal.Decimal, bool) {
	switch p.Type {
	case model.PaymentDeposit:
		return p.FinalAmount, true
	case model.PaymentPrize, model.PaymentBonus:
		return p.Amount, true
	default:
		return decimal.Zero, false
	}
}

func (s *PaymentServiceImpl) Deposit(ctx context.Context, userID int64, req *model.DepositRequest) (*model.PaymentResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	kind, err := model.ParseGatewayKind(req.Gateway)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidGateway, req.Gateway)
	}
	if kind != s.provider.Kind() {
		return nil, fmt.Errorf("%w: gateway %s is not enabled", model.ErrInvalidGateway, kind)
	}

	// Initiate before writing anything so a gateway outage leaves no orphan row.
	init, err := s.provider.Initiate(ctx, amount.StringFixed(0), s.callbackURL)
	if err != nil {
		return nil, fmt.Errorf("initiate deposit: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.Expiry)
	payment := &model.Payment{
		TransactionID:        uuid.New().String(),
		UserID:               userID,
		Type:                 model.PaymentDeposit,
		Amount:               amount,
		Fee:                  decimal.Zero,
		FinalAmount:          amount,
		Status:               model.PaymentPending,
		Gateway:              kind,
		GatewayTransactionID: &init.GatewayTransactionID,
		Description:          req.Description,
		ExpiresAt:            &expiresAt,
	}

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.paymentRepo.Insert(ctx, payment, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("insert deposit payment: %w", err)
	}

	s.logger.Info().
		Str("transaction_id", payment.TransactionID).
		Int64("user_id", userID).
		Str("amount", amount.StringFixed(0)).
		Str("gateway", kind.String()).
		Msg("deposit initiated")

	resp := paymentResponse(payment)
	resp.Message = init.PaymentURL
	return resp, nil
}

func (s *PaymentServiceImpl) HandleGatewayCallback(ctx context.Context, req *model.GatewayCallbackRequest) (bool, error) {
	payment, err := s.paymentRepo.GetByGatewayTransactionID(ctx, req.GatewayTransactionID)
	if err != nil {
		return false, fmt.Errorf("get payment by gateway transaction: %w", err)
	}

	if !req.Success {
		reason := req.Reason
		if reason == "" {
			reason = "gateway reported failure"
		}
		_, err := s.MarkFailed(ctx, payment.ID, reason)
		return false, err
	}

	// Claim the payment for verification; duplicate callbacks either find it
	// already completed (no-op) or already claimed (verify again, harmless).
	var alreadyCompleted bool
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.GetForUpdate(ctx, payment.ID, tx)
		if err != nil {
			return fmt.Errorf("get payment for update: %w", err)
		}
		switch p.Status {
		case model.PaymentCompleted:
			alreadyCompleted = true
			return nil
		case model.PaymentVerifying:
			return nil
		case model.PaymentPending, model.PaymentProcessing:
			p.Status = model.PaymentVerifying
			return s.paymentRepo.Update(ctx, p, tx)
		default:
			return fmt.Errorf("%w: payment %s is %s", model.ErrInvalidStateTransition, p.TransactionID, p.Status)
		}
	})
	if err != nil {
		return false, err
	}
	if alreadyCompleted {
		return true, nil
	}

	result, err := s.provider.Verify(ctx, req.GatewayTransactionID)
	if err != nil {
		// Transient gateway error, the verification worker picks it up.
		s.logger.Warn().Err(err).
			Str("transaction_id", payment.TransactionID).
			Msg("gateway verification failed, leaving payment for background retry")
		if incErr := s.paymentRepo.IncrementVerifyAttempts(ctx, payment.ID); incErr != nil {
			return false, fmt.Errorf("increment verify attempts: %w", incErr)
		}
		return false, nil
	}

	if !result.Success {
		_, err := s.MarkFailed(ctx, payment.ID, result.Reason)
		return false, err
	}

	card := result.CardInfo
	if card == nil && req.CardNumber != "" {
		card = &model.CardInfo{Last4Digits: last4(req.CardNumber), HolderName: req.CardHolderName}
	}
	return s.MarkCompleted(ctx, payment.ID, result.TrackingCode, card)
}

func (s *PaymentServiceImpl) MarkCompleted(ctx context.Context, paymentID int64, trackingCode string, card *model.CardInfo) (bool, error) {
	var (
		completed bool
		payment   *model.Payment
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.GetForUpdate(ctx, paymentID, tx)
		if err != nil {
			return fmt.Errorf("get payment for update: %w", err)
		}

		// Completed-once guard: the first transition wins, every later call
		// is a silent no-op so duplicate callbacks cannot double-credit.
		if p.Status == model.PaymentCompleted {
			s.logger.Info().Str("transaction_id", p.TransactionID).Msg("payment already completed")
			return nil
		}

		switch p.Status {
		case model.PaymentPending, model.PaymentProcessing, model.PaymentVerifying:
		default:
			return fmt.Errorf("%w: cannot complete payment in status %s", model.ErrInvalidStateTransition, p.Status)
		}

		// Wallet-gateway entries settle at completion: the debit, the payment
		// flip and the participant confirmation commit together or not at all.
		if p.Type == model.PaymentTournamentEntry && p.Gateway == model.GatewayWallet && p.Amount.IsPositive() {
			_, err := s.ledger.Record(ctx, tx, RecordParams{
				UserID:       p.UserID,
				Type:         model.TransactionDebit,
				Amount:       p.Amount,
				Description:  fmt.Sprintf("%s %s settled from wallet", p.Type, p.TransactionID),
				PaymentID:    &p.ID,
				TournamentID: p.TournamentID,
			})
			if err != nil {
				return fmt.Errorf("debit wallet: %w", err)
			}
		}

		now := time.Now()
		p.Status = model.PaymentCompleted
		p.CompletedAt = &now
		if trackingCode != "" {
			p.GatewayTrackingCode = &trackingCode
		}
		if card != nil {
			p.CardNumber = &card.Last4Digits
			p.CardHolderName = &card.HolderName
		}

		if credit, ok := creditAmount(p); ok {
			_, err := s.ledger.Record(ctx, tx, RecordParams{
				UserID:       p.UserID,
				Type:         model.TransactionCredit,
				Amount:       credit,
				Description:  fmt.Sprintf("%s %s completed", p.Type, p.TransactionID),
				PaymentID:    &p.ID,
				TournamentID: p.TournamentID,
			})
			if err != nil {
				return fmt.Errorf("credit wallet: %w", err)
			}
		}

		if err := s.paymentRepo.Update(ctx, p, tx); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		if p.Type == model.PaymentTournamentEntry {
			if err := s.confirmParticipant(ctx, tx, p); err != nil {
				return err
			}
		}

		completed = true
		payment = p
		return nil
	})
	if err != nil {
		return false, err
	}

	if completed {
		s.logger.Info().
			Str("transaction_id", payment.TransactionID).
			Int64("user_id", payment.UserID).
			Str("type", payment.Type.String()).
			Str("amount", payment.Amount.StringFixed(0)).
			Msg("payment completed")
		s.sink.Notify(ctx, notify.Event{
			UserID:   payment.UserID,
			Type:     "payment_completed",
			Title:    "Payment completed",
			Message:  fmt.Sprintf("Your %s payment of %s was completed", payment.Type, payment.Amount.StringFixed(0)),
			Priority: model.PriorityNormal,
			Metadata: map[string]string{"transaction_id": payment.TransactionID},
		})
	}
	return completed, nil
}

// confirmParticipant flips the registration tied to an entry payment to
// confirmed and recomputes the tournament prize pool, all inside the
// completing transaction.
func (s *PaymentServiceImpl) confirmParticipant(ctx context.Context, tx pgx.Tx, p *model.Payment) error {
	participant, err := s.participantRepo.GetByPayment(ctx, p.ID, tx)
	if err != nil {
		if errors.Is(err, model.ErrParticipantNotFound) {
			// Entry payment without a registration row, nothing to confirm.
			s.logger.Warn().Str("transaction_id", p.TransactionID).Msg("entry payment has no participant")
			return nil
		}
		return fmt.Errorf("get participant by payment: %w", err)
	}

	flipped, err := s.participantRepo.UpdateStatus(ctx, participant.ID, model.ParticipantPending, model.ParticipantConfirmed, "", tx)
	if err != nil {
		return fmt.Errorf("confirm participant: %w", err)
	}
	if !flipped {
		return nil
	}

	tournament, err := s.tournamentRepo.GetForUpdate(ctx, participant.TournamentID, tx)
	if err != nil {
		return fmt.Errorf("get tournament for update: %w", err)
	}
	confirmed, err := s.participantRepo.CountConfirmed(ctx, tournament.ID, tx)
	if err != nil {
		return fmt.Errorf("count confirmed participants: %w", err)
	}
	pool := tournament.EntryFee.Mul(decimal.NewFromInt(int64(confirmed)))
	if err := s.tournamentRepo.UpdatePrizePool(ctx, tournament.ID, pool, confirmed, tx); err != nil {
		return fmt.Errorf("update prize pool: %w", err)
	}

	s.logger.Info().
		Int64("tournament_id", tournament.ID).
		Int64("participant_id", participant.ID).
		Int("confirmed", confirmed).
		Str("prize_pool", pool.StringFixed(0)).
		Msg("participant confirmed")
	return nil
}

func (s *PaymentServiceImpl) MarkFailed(ctx context.Context, paymentID int64, reason string) (bool, error) {
	var (
		failed  bool
		payment *model.Payment
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.GetForUpdate(ctx, paymentID, tx)
		if err != nil {
			return fmt.Errorf("get payment for update: %w", err)
		}

		switch p.Status {
		case model.PaymentCompleted, model.PaymentRefunded, model.PaymentFailed, model.PaymentCancelled:
			// Settled payments stay settled.
			return nil
		}

		p.Status = model.PaymentFailed
		if reason != "" {
			p.Description = appendReason(p.Description, "failed: "+reason)
		}
		if err := s.paymentRepo.Update(ctx, p, tx); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		failed = true
		payment = p
		return nil
	})
	if err != nil {
		return false, err
	}

	if failed {
		s.logger.Info().
			Str("transaction_id", payment.TransactionID).
			Str("reason", reason).
			Msg("payment failed")
		s.sink.Notify(ctx, notify.Event{
			UserID:   payment.UserID,
			Type:     "payment_failed",
			Title:    "Payment failed",
			Message:  "Your payment could not be completed",
			Priority: model.PriorityHigh,
			Metadata: map[string]string{"transaction_id": payment.TransactionID},
		})
	}
	return failed, nil
}

func (s *PaymentServiceImpl) Refund(ctx context.Context, transactionID, reason string, adminID *int64) error {
	var payment *model.Payment

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		found, err := s.paymentRepo.GetByTransactionID(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		p, err := s.paymentRepo.GetForUpdate(ctx, found.ID, tx)
		if err != nil {
			return fmt.Errorf("get payment for update: %w", err)
		}

		if p.Type == model.PaymentRefund {
			return fmt.Errorf("%w: refund payments cannot be refunded", model.ErrValidation)
		}
		if p.Status != model.PaymentCompleted {
			return fmt.Errorf("%w: only completed payments can be refunded, got %s", model.ErrInvalidStateTransition, p.Status)
		}

		p.Status = model.PaymentRefunded
		if reason != "" {
			p.Description = appendReason(p.Description, "refunded: "+reason)
		}
		if err := s.paymentRepo.Update(ctx, p, tx); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		// Money the user paid out comes back; deposits and prizes were
		// credited on completion, so their refund reverses nothing here.
		if p.Type == model.PaymentTournamentEntry || p.Type == model.PaymentWithdrawal {
			_, err := s.ledger.Record(ctx, tx, RecordParams{
				UserID:       p.UserID,
				Type:         model.TransactionCredit,
				Amount:       p.Amount,
				Description:  fmt.Sprintf("refund of %s %s", p.Type, p.TransactionID),
				PaymentID:    &p.ID,
				TournamentID: p.TournamentID,
			})
			if err != nil {
				return fmt.Errorf("credit refund: %w", err)
			}
		}

		now := time.Now()
		audit := &model.Payment{
			TransactionID: uuid.New().String(),
			UserID:        p.UserID,
			Type:          model.PaymentRefund,
			Amount:        p.Amount,
			Fee:           decimal.Zero,
			FinalAmount:   p.Amount,
			Status:        model.PaymentCompleted,
			Gateway:       model.GatewayAdmin,
			TournamentID:  p.TournamentID,
			Description:   fmt.Sprintf("refund of %s: %s", p.TransactionID, reason),
			CompletedAt:   &now,
		}
		if err := s.paymentRepo.Insert(ctx, audit, tx); err != nil {
			return fmt.Errorf("insert refund record: %w", err)
		}

		payment = p
		return nil
	})
	if err != nil {
		return err
	}

	evt := s.logger.Info().
		Str("transaction_id", payment.TransactionID).
		Int64("user_id", payment.UserID).
		Str("amount", payment.Amount.StringFixed(0))
	if adminID != nil {
		evt = evt.Int64("admin_id", *adminID)
	}
	evt.Msg("payment refunded")

	s.sink.Notify(ctx, notify.Event{
		UserID:   payment.UserID,
		Type:     "payment_refunded",
		Title:    "Payment refunded",
		Message:  fmt.Sprintf("Your payment of %s was refunded", payment.Amount.StringFixed(0)),
		Priority: model.PriorityNormal,
		Metadata: map[string]string{"transaction_id": payment.TransactionID},
	})
	return nil
}

func (s *PaymentServiceImpl) Retry(ctx context.Context, userID int64, transactionID string) (*model.PaymentResponse, error) {
	existing, err := s.paymentRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if existing.UserID != userID {
		return nil, model.ErrPaymentNotFound
	}
	if !existing.CanRetry() {
		if existing.RetryCount >= model.MaxPaymentRetries {
			return nil, model.ErrRetryLimitReached
		}
		return nil, fmt.Errorf("%w: cannot retry payment in status %s", model.ErrInvalidStateTransition, existing.Status)
	}

	init, err := s.provider.Initiate(ctx, existing.Amount.StringFixed(0), s.callbackURL)
	if err != nil {
		return nil, fmt.Errorf("initiate retry: %w", err)
	}

	var payment *model.Payment
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.paymentRepo.GetForUpdate(ctx, existing.ID, tx)
		if err != nil {
			return fmt.Errorf("get payment for update: %w", err)
		}
		// Revalidate under the lock, a concurrent retry may have won.
		if !p.CanRetry() {
			return fmt.Errorf("%w: cannot retry payment in status %s", model.ErrInvalidStateTransition, p.Status)
		}

		expiresAt := time.Now().Add(s.cfg.Expiry)
		p.Status = model.PaymentPending
		p.RetryCount++
		p.ExpiresAt = &expiresAt
		p.GatewayTransactionID = &init.GatewayTransactionID
		if err := s.paymentRepo.Update(ctx, p, tx); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", payment.TransactionID).
		Int("retry_count", payment.RetryCount).
		Msg("payment retried")

	resp := paymentResponse(payment)
	resp.Message = init.PaymentURL
	return resp, nil
}

func (s *PaymentServiceImpl) Cancel(ctx context.Context, userID int64, transactionID, reason string) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		found, err := s.paymentRepo.GetByTransactionID(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}
		if found.UserID != userID {
			return model.ErrPaymentNotFound
		}
		p, err := s.paymentRepo.GetForUpdate(ctx, found.ID, tx)
		if err != nil {
			return fmt.Errorf("get payment for update: %w", err)
		}
		if p.Status != model.PaymentPending {
			return fmt.Errorf("%w: only pending payments can be cancelled, got %s", model.ErrInvalidStateTransition, p.Status)
		}

		p.Status = model.PaymentCancelled
		if reason != "" {
			p.Description = appendReason(p.Description, "cancelled: "+reason)
		}
		return s.paymentRepo.Update(ctx, p, tx)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("transaction_id", transactionID).Int64("user_id", userID).Msg("payment cancelled")
	return nil
}

func (s *PaymentServiceImpl) Get(ctx context.Context, userID int64, transactionID string) (*model.Payment, error) {
	p, err := s.paymentRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p.UserID != userID {
		return nil, model.ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentServiceImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Payment, error) {
	payments, err := s.paymentRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func paymentResponse(p *model.Payment) *model.PaymentResponse {
	resp := &model.PaymentResponse{
		TransactionID: p.TransactionID,
		Status:        p.Status.String(),
		Amount:        p.Amount.StringFixed(0),
		Fee:           p.Fee.StringFixed(0),
		FinalAmount:   p.FinalAmount.StringFixed(0),
	}
	if p.ExpiresAt != nil {
		resp.ExpiresAt = p.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}

func appendReason(description, reason string) string {
	if description == "" {
		return reason
	}
	return description + "; " + reason
}

func last4(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
