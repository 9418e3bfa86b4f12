package service

import (
	"context"
	"fmt"
	"time"

	"clash-arena/internal/model"
	"clash-arena/internal/notify"
	"clash-arena/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// prizeShares maps the number of prize placements to percentage shares of the
// post-commission pool, first place first.
var prizeShares = map[int][]int64{
	1: {100},
	2: {60, 40},
	3: {50, 30, 20},
	4: {40, 30, 20, 10},
	5: {40, 25, 15, 12, 8},
	6: {35, 25, 15, 12, 8, 5},
	7: {35, 22, 15, 11, 8, 5, 4},
	8: {35, 20, 13, 10, 8, 6, 4, 4},
}

const (
	defaultCommissionPercent = "10"
	invitationTTL            = 7 * 24 * time.Hour
)

type TournamentServiceImpl struct {
	tournamentRepo  repository.TournamentRepository
	participantRepo repository.ParticipantRepository
	invitationRepo  repository.InvitationRepository
	paymentRepo     repository.PaymentRepository
	payments        PaymentService
	coupons         CouponService
	ledger          LedgerService
	dbManager       repository.DBManager
	sink            notify.Sink
	logger          zerolog.Logger
}

var _ TournamentService = (*TournamentServiceImpl)(nil)

func NewTournamentService(
	tournamentRepo repository.TournamentRepository,
	participantRepo repository.ParticipantRepository,
	invitationRepo repository.InvitationRepository,
	paymentRepo repository.PaymentRepository,
	payments PaymentService,
	coupons CouponService,
	ledger LedgerService,
	dbManager repository.DBManager,
	sink notify.Sink,
	logger zerolog.Logger,
) TournamentService {
	return &TournamentServiceImpl{
		tournamentRepo:  tournamentRepo,
		participantRepo: participantRepo,
		invitationRepo:  invitationRepo,
		paymentRepo:     paymentRepo,
		payments:        payments,
		coupons:         coupons,
		ledger:          ledger,
		dbManager:       dbManager,
		sink:            sink,
		logger:          logger,
	}
}

func (s *TournamentServiceImpl) Create(ctx context.Context, req *model.CreateTournamentRequest) (*model.Tournament, error) {
	pricing := model.Pricing(req.Pricing)
	if pricing != model.PricingFree && pricing != model.PricingPremium {
		return nil, fmt.Errorf("%w: unknown pricing %q", model.ErrValidation, req.Pricing)
	}

	entryFee, err := decimal.NewFromString(req.EntryFee)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if entryFee.IsNegative() {
		return nil, fmt.Errorf("%w: entry fee cannot be negative", model.ErrInvalidAmount)
	}
	if pricing == model.PricingFree && entryFee.IsPositive() {
		return nil, fmt.Errorf("%w: free tournaments cannot charge an entry fee", model.ErrValidation)
	}
	if pricing == model.PricingPremium && !entryFee.IsPositive() {
		return nil, fmt.Errorf("%w: premium tournaments need a positive entry fee", model.ErrValidation)
	}

	commissionStr := req.PlatformCommission
	if commissionStr == "" {
		commissionStr = defaultCommissionPercent
	}
	commission, err := decimal.NewFromString(commissionStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if commission.IsNegative() || commission.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: commission must be between 0 and 100", model.ErrValidation)
	}

	if !req.RegistrationStart.Before(req.RegistrationEnd) {
		return nil, fmt.Errorf("%w: registration window is empty", model.ErrValidation)
	}
	if req.StartDate.Before(req.RegistrationEnd) {
		return nil, fmt.Errorf("%w: tournament cannot start before registration closes", model.ErrValidation)
	}

	bestOf := req.BestOf
	if bestOf <= 0 {
		bestOf = 3
	}

	tournament := &model.Tournament{
		Title:              req.Title,
		Status:             model.TournamentDraft,
		Pricing:            pricing,
		MaxParticipants:    req.MaxParticipants,
		EntryFee:           entryFee,
		PrizePool:          decimal.Zero,
		PlatformCommission: commission,
		BestOf:             bestOf,
		RegistrationStart:  req.RegistrationStart,
		RegistrationEnd:    req.RegistrationEnd,
		StartDate:          req.StartDate,
	}
	if req.CreatedBy != 0 {
		tournament.CreatedBy = &req.CreatedBy
	}

	if err := s.tournamentRepo.Insert(ctx, tournament); err != nil {
		return nil, fmt.Errorf("insert tournament: %w", err)
	}

	s.logger.Info().
		Int64("tournament_id", tournament.ID).
		Str("title", tournament.Title).
		Str("pricing", string(pricing)).
		Str("entry_fee", entryFee.StringFixed(0)).
		Msg("tournament created")
	return tournament, nil
}

func (s *TournamentServiceImpl) Get(ctx context.Context, tournamentID int64) (*model.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	return t, nil
}

func (s *TournamentServiceImpl) Publish(ctx context.Context, tournamentID int64) error {
	return s.transition(ctx, tournamentID, model.TournamentDraft, model.TournamentPending)
}

func (s *TournamentServiceImpl) OpenRegistration(ctx context.Context, tournamentID int64) error {
	return s.transition(ctx, tournamentID, model.TournamentPending, model.TournamentRegistration)
}

func (s *TournamentServiceImpl) MarkReady(ctx context.Context, tournamentID int64) error {
	return s.transition(ctx, tournamentID, model.TournamentRegistration, model.TournamentReady)
}

func (s *TournamentServiceImpl) Start(ctx context.Context, tournamentID int64) error {
	return s.transition(ctx, tournamentID, model.TournamentReady, model.TournamentOngoing)
}

// transition performs one guarded lifecycle flip. The filtered update makes a
// lost race indistinguishable from a wrong starting state, both reject.
func (s *TournamentServiceImpl) transition(ctx context.Context, tournamentID int64, from, to model.TournamentStatus) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.tournamentRepo.GetByID(ctx, tournamentID, tx); err != nil {
			return fmt.Errorf("get tournament: %w", err)
		}
		flipped, err := s.tournamentRepo.UpdateStatus(ctx, tournamentID, from, to, tx)
		if err != nil {
			return fmt.Errorf("update tournament status: %w", err)
		}
		if !flipped {
			return fmt.Errorf("%w: tournament is not %s", model.ErrInvalidStateTransition, from)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("tournament_id", tournamentID).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("tournament transitioned")
	return nil
}

func (s *TournamentServiceImpl) Finish(ctx context.Context, tournamentID int64) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.tournamentRepo.GetByID(ctx, tournamentID, tx); err != nil {
			return fmt.Errorf("get tournament: %w", err)
		}
		flipped, err := s.tournamentRepo.SetFinished(ctx, tournamentID, time.Now(), tx)
		if err != nil {
			return fmt.Errorf("finish tournament: %w", err)
		}
		if !flipped {
			return fmt.Errorf("%w: tournament is not ongoing", model.ErrInvalidStateTransition)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("tournament_id", tournamentID).Msg("tournament finished")

	return s.DistributePrizes(ctx, tournamentID)
}

func (s *TournamentServiceImpl) Register(ctx context.Context, tournamentID, userID int64, req *model.RegisterRequest) (*model.RegistrationResponse, error) {
	var (
		participant *model.Participant
		payment     *model.Payment
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		tournament, err := s.tournamentRepo.GetForUpdate(ctx, tournamentID, tx)
		if err != nil {
			return fmt.Errorf("get tournament for update: %w", err)
		}
		if !tournament.CanRegister(time.Now()) {
			return model.ErrRegistrationClosed
		}

		confirmed, err := s.participantRepo.CountConfirmed(ctx, tournamentID, tx)
		if err != nil {
			return fmt.Errorf("count confirmed participants: %w", err)
		}
		if confirmed >= tournament.MaxParticipants {
			return model.ErrTournamentFull
		}

		if tournament.Pricing == model.PricingFree || tournament.EntryFee.IsZero() {
			participant = &model.Participant{
				TournamentID: tournamentID,
				UserID:       userID,
				Status:       model.ParticipantConfirmed,
				PrizeWon:     decimal.Zero,
			}
			if err := s.participantRepo.Insert(ctx, participant, tx); err != nil {
				return fmt.Errorf("insert participant: %w", err)
			}
			return s.recalcPrizePool(ctx, tx, tournament)
		}

		charge := tournament.EntryFee
		var (
			coupon   *model.Coupon
			discount decimal.Decimal
		)
		if req != nil && req.CouponCode != "" {
			coupon, discount, err = s.coupons.Check(ctx, tx, req.CouponCode, userID, tournamentID, tournament.EntryFee)
			if err != nil {
				return err
			}
			charge = charge.Sub(discount)
			if charge.IsNegative() {
				charge = decimal.Zero
			}
		}

		expiresAt := time.Now().Add(model.PaymentExpiry)
		payment = &model.Payment{
			TransactionID: uuid.New().String(),
			UserID:        userID,
			Type:          model.PaymentTournamentEntry,
			Amount:        charge,
			Fee:           decimal.Zero,
			FinalAmount:   charge,
			Status:        model.PaymentPending,
			Gateway:       model.GatewayWallet,
			TournamentID:  &tournamentID,
			Description:   fmt.Sprintf("entry fee for %s", tournament.Title),
			ExpiresAt:     &expiresAt,
		}
		if err := s.paymentRepo.Insert(ctx, payment, tx); err != nil {
			return fmt.Errorf("insert entry payment: %w", err)
		}

		if coupon != nil {
			if err := s.coupons.Redeem(ctx, tx, coupon.ID, userID, payment.ID, discount); err != nil {
				return err
			}
		}

		participant = &model.Participant{
			TournamentID: tournamentID,
			UserID:       userID,
			Status:       model.ParticipantPending,
			PrizeWon:     decimal.Zero,
			PaymentID:    &payment.ID,
		}
		if err := s.participantRepo.Insert(ctx, participant, tx); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Wallet entries settle through the same completion path as gateway-paid
	// ones: the debit, payment completion and participant confirmation happen
	// together inside MarkCompleted.
	if payment != nil {
		if _, err := s.payments.MarkCompleted(ctx, payment.ID, "", nil); err != nil {
			s.failRegistration(ctx, participant, payment, err)
			return nil, err
		}
		payment.Status = model.PaymentCompleted
		participant.Status = model.ParticipantConfirmed
	}

	s.logger.Info().
		Int64("tournament_id", tournamentID).
		Int64("user_id", userID).
		Int64("participant_id", participant.ID).
		Msg("participant registered")

	s.sink.Notify(ctx, notify.Event{
		UserID:   userID,
		Type:     "tournament_registered",
		Title:    "Registration confirmed",
		Message:  "Your tournament registration is confirmed",
		Priority: model.PriorityNormal,
		Metadata: map[string]string{"tournament_id": fmt.Sprintf("%d", tournamentID)},
	})

	resp := &model.RegistrationResponse{
		ParticipantID: participant.ID,
		Status:        participant.Status.String(),
	}
	if payment != nil {
		resp.Payment = paymentResponse(payment)
	}
	return resp, nil
}

// failRegistration unwinds a registration whose wallet settlement failed so
// the pending rows do not linger until the expiry sweep.
func (s *TournamentServiceImpl) failRegistration(ctx context.Context, participant *model.Participant, payment *model.Payment, cause error) {
	s.logger.Warn().Err(cause).
		Int64("participant_id", participant.ID).
		Str("transaction_id", payment.TransactionID).
		Msg("entry settlement failed, unwinding registration")

	if _, err := s.payments.MarkFailed(ctx, payment.ID, "wallet settlement failed"); err != nil {
		s.logger.Error().Err(err).Int64("payment_id", payment.ID).Msg("failed to mark entry payment failed")
	}
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		_, err := s.participantRepo.UpdateStatus(ctx, participant.ID, model.ParticipantPending, model.ParticipantCancelled, "entry payment failed", tx)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("participant_id", participant.ID).Msg("failed to cancel pending participant")
	}
}

// recalcPrizePool recomputes pool and headcount from confirmed participants.
// Must run with the tournament row locked.
func (s *TournamentServiceImpl) recalcPrizePool(ctx context.Context, tx pgx.Tx, tournament *model.Tournament) error {
	confirmed, err := s.participantRepo.CountConfirmed(ctx, tournament.ID, tx)
	if err != nil {
		return fmt.Errorf("count confirmed participants: %w", err)
	}
	pool := tournament.EntryFee.Mul(decimal.NewFromInt(int64(confirmed)))
	if err := s.tournamentRepo.UpdatePrizePool(ctx, tournament.ID, pool, confirmed, tx); err != nil {
		return fmt.Errorf("update prize pool: %w", err)
	}
	return nil
}

func (s *TournamentServiceImpl) Cancel(ctx context.Context, tournamentID int64, reason string) error {
	var participants []*model.Participant

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		tournament, err := s.tournamentRepo.GetForUpdate(ctx, tournamentID, tx)
		if err != nil {
			return fmt.Errorf("get tournament for update: %w", err)
		}
		if tournament.Status.IsTerminal() {
			return fmt.Errorf("%w: tournament is already %s", model.ErrInvalidStateTransition, tournament.Status)
		}
		flipped, err := s.tournamentRepo.UpdateStatus(ctx, tournamentID, tournament.Status, model.TournamentCancelled, tx)
		if err != nil {
			return fmt.Errorf("cancel tournament: %w", err)
		}
		if !flipped {
			return fmt.Errorf("%w: tournament changed state concurrently", model.ErrInvalidStateTransition)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("tournament_id", tournamentID).Str("reason", reason).Msg("tournament cancelled")

	participants, err = s.participantRepo.ListConfirmed(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("list confirmed participants: %w", err)
	}

	// Refund each participant independently so one failure does not block the
	// rest; the payment-level refund guard makes a re-run pick up stragglers.
	var failed int
	for _, p := range participants {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.refundParticipant(ctx, p, "tournament cancelled: "+reason); err != nil {
			failed++
			s.logger.Error().Err(err).
				Int64("participant_id", p.ID).
				Int64("tournament_id", tournamentID).
				Msg("failed to refund participant")
		}
	}

	s.logger.Info().
		Int64("tournament_id", tournamentID).
		Int("participants", len(participants)).
		Int("failed", failed).
		Msg("tournament cancellation refunds completed")
	return nil
}

func (s *TournamentServiceImpl) refundParticipant(ctx context.Context, p *model.Participant, reason string) error {
	// Refund before the status flip: a failed refund leaves the participant
	// confirmed, so a re-run still finds and retries them. A payment already
	// refunded by an earlier partial run only needs the flip.
	if p.PaymentID != nil {
		payment, err := s.paymentRepo.GetByID(ctx, *p.PaymentID)
		if err != nil {
			return fmt.Errorf("get entry payment: %w", err)
		}
		if payment.Status == model.PaymentCompleted && payment.Amount.IsPositive() {
			if err := s.payments.Refund(ctx, payment.TransactionID, reason, nil); err != nil {
				return fmt.Errorf("refund entry payment: %w", err)
			}
		}
	}

	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		flipped, err := s.participantRepo.UpdateStatus(ctx, p.ID, model.ParticipantConfirmed, model.ParticipantCancelled, reason, tx)
		if err != nil {
			return fmt.Errorf("cancel participant: %w", err)
		}
		if !flipped {
			return fmt.Errorf("%w: participant is not confirmed", model.ErrInvalidStateTransition)
		}
		return nil
	})
}

func (s *TournamentServiceImpl) DistributePrizes(ctx context.Context, tournamentID int64) error {
	type payout struct {
		participant *model.Participant
		placement   int
		prize       decimal.Decimal
	}
	var payouts []payout

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		tournament, err := s.tournamentRepo.GetForUpdate(ctx, tournamentID, tx)
		if err != nil {
			return fmt.Errorf("get tournament for update: %w", err)
		}
		if tournament.Status != model.TournamentFinished {
			return fmt.Errorf("%w: prizes are distributed after the tournament finishes, got %s", model.ErrInvalidStateTransition, tournament.Status)
		}

		pool := tournament.PrizeAfterCommission()
		if !pool.IsPositive() {
			return nil
		}

		ranked, err := s.participantRepo.ListRanked(ctx, tournamentID, tournament.BestOf, tx)
		if err != nil {
			return fmt.Errorf("list ranked participants: %w", err)
		}
		if len(ranked) == 0 {
			return nil
		}

		shares := sharesFor(tournament.BestOf, len(ranked))
		for i, participant := range ranked {
			if i >= len(shares) {
				break
			}
			prize := pool.Mul(decimal.NewFromInt(shares[i])).Div(decimal.NewFromInt(100)).Floor()
			if !prize.IsPositive() {
				continue
			}

			placement := i + 1
			// The prize_won = 0 guard makes every payout at most once, so a
			// re-run after a partial failure only pays the remainder.
			awarded, err := s.participantRepo.SetPrize(ctx, participant.ID, placement, prize, tx)
			if err != nil {
				return fmt.Errorf("set prize: %w", err)
			}
			if !awarded {
				continue
			}

			now := time.Now()
			payment := &model.Payment{
				TransactionID: uuid.New().String(),
				UserID:        participant.UserID,
				Type:          model.PaymentPrize,
				Amount:        prize,
				Fee:           decimal.Zero,
				FinalAmount:   prize,
				Status:        model.PaymentCompleted,
				Gateway:       model.GatewayAdmin,
				TournamentID:  &tournamentID,
				Description:   fmt.Sprintf("prize for placement %d in %s", placement, tournament.Title),
				CompletedAt:   &now,
			}
			if err := s.paymentRepo.Insert(ctx, payment, tx); err != nil {
				return fmt.Errorf("insert prize payment: %w", err)
			}

			_, err = s.ledger.Record(ctx, tx, RecordParams{
				UserID:       participant.UserID,
				Type:         model.TransactionCredit,
				Amount:       prize,
				Description:  fmt.Sprintf("prize for placement %d in %s", placement, tournament.Title),
				PaymentID:    &payment.ID,
				TournamentID: &tournamentID,
			})
			if err != nil {
				return fmt.Errorf("credit prize: %w", err)
			}

			payouts = append(payouts, payout{participant: participant, placement: placement, prize: prize})
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range payouts {
		s.logger.Info().
			Int64("tournament_id", tournamentID).
			Int64("user_id", p.participant.UserID).
			Int("placement", p.placement).
			Str("prize", p.prize.StringFixed(0)).
			Msg("prize distributed")
		s.sink.Notify(ctx, notify.Event{
			UserID:   p.participant.UserID,
			Type:     "prize_won",
			Title:    "You won a prize",
			Message:  fmt.Sprintf("You placed %d and won %s", p.placement, p.prize.StringFixed(0)),
			Priority: model.PriorityHigh,
			Metadata: map[string]string{"tournament_id": fmt.Sprintf("%d", tournamentID)},
		})
	}
	return nil
}

// sharesFor returns the percentage split for the given placement count.
// Beyond the tabled sizes the pool splits evenly.
func sharesFor(bestOf, ranked int) []int64 {
	n := bestOf
	if ranked < n {
		n = ranked
	}
	if shares, ok := prizeShares[n]; ok {
		return shares
	}
	shares := make([]int64, n)
	each := int64(100 / n)
	for i := range shares {
		shares[i] = each
	}
	return shares
}

func (s *TournamentServiceImpl) DisqualifyParticipant(ctx context.Context, participantID int64, reason string) error {
	var participant *model.Participant

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		p, err := s.participantRepo.GetForUpdate(ctx, participantID, tx)
		if err != nil {
			return fmt.Errorf("get participant for update: %w", err)
		}
		flipped, err := s.participantRepo.UpdateStatus(ctx, participantID, model.ParticipantConfirmed, model.ParticipantDisqualified, reason, tx)
		if err != nil {
			return fmt.Errorf("disqualify participant: %w", err)
		}
		if !flipped {
			return fmt.Errorf("%w: only confirmed participants can be disqualified, got %s", model.ErrInvalidStateTransition, p.Status)
		}
		participant = p
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("participant_id", participantID).
		Str("reason", reason).
		Msg("participant disqualified")

	s.sink.Notify(ctx, notify.Event{
		UserID:   participant.UserID,
		Type:     "participant_disqualified",
		Title:    "Disqualified from tournament",
		Message:  reason,
		Priority: model.PriorityUrgent,
	})
	return nil
}

func (s *TournamentServiceImpl) RefundParticipant(ctx context.Context, participantID int64, reason string) error {
	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return fmt.Errorf("get participant: %w", err)
	}
	return s.refundParticipant(ctx, participant, reason)
}

func (s *TournamentServiceImpl) Invite(ctx context.Context, tournamentID, invitedUserID int64, invitedBy *int64, message string) (*model.Invitation, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if tournament.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: tournament is %s", model.ErrInvalidStateTransition, tournament.Status)
	}

	invitation := &model.Invitation{
		TournamentID: tournamentID,
		InvitedUser:  invitedUserID,
		InvitedBy:    invitedBy,
		Code:         uuid.New().String(),
		Status:       model.InvitationPending,
		Message:      message,
		ExpiresAt:    time.Now().Add(invitationTTL),
	}
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.invitationRepo.Insert(ctx, invitation, tx)
	})
	if err != nil {
		return nil, fmt.Errorf("insert invitation: %w", err)
	}

	s.logger.Info().
		Int64("tournament_id", tournamentID).
		Int64("invited_user_id", invitedUserID).
		Msg("invitation created")

	s.sink.Notify(ctx, notify.Event{
		UserID:   invitedUserID,
		Type:     "tournament_invitation",
		Title:    "Tournament invitation",
		Message:  fmt.Sprintf("You are invited to %s", tournament.Title),
		Priority: model.PriorityNormal,
		Metadata: map[string]string{"code": invitation.Code},
	})
	return invitation, nil
}

func (s *TournamentServiceImpl) RespondInvitation(ctx context.Context, code string, accept bool) error {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		invitation, err := s.invitationRepo.GetByCode(ctx, code, tx)
		if err != nil {
			return fmt.Errorf("get invitation: %w", err)
		}
		if invitation.Status != model.InvitationPending {
			return fmt.Errorf("%w: invitation is %s", model.ErrInvalidStateTransition, invitation.Status)
		}
		if time.Now().After(invitation.ExpiresAt) {
			if _, err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, model.InvitationPending, model.InvitationExpired, tx); err != nil {
				return fmt.Errorf("expire invitation: %w", err)
			}
			return fmt.Errorf("%w: invitation has expired", model.ErrInvalidStateTransition)
		}

		to := model.InvitationDeclined
		if accept {
			to = model.InvitationAccepted
		}
		flipped, err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, model.InvitationPending, to, tx)
		if err != nil {
			return fmt.Errorf("update invitation: %w", err)
		}
		if !flipped {
			return fmt.Errorf("%w: invitation already answered", model.ErrInvalidStateTransition)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("code", code).Bool("accepted", accept).Msg("invitation answered")
	return nil
}
