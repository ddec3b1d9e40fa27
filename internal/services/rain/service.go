package rain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/driftcase/rainpot/internal/common/clock"
	"github.com/driftcase/rainpot/internal/common/scheduler"
	"github.com/driftcase/rainpot/internal/common/uuid"
	"github.com/driftcase/rainpot/internal/logger"
	"github.com/driftcase/rainpot/internal/models"
	ledgerRepo "github.com/driftcase/rainpot/internal/repositories/ledger"
	rainRepo "github.com/driftcase/rainpot/internal/repositories/rain"
	userRepo "github.com/driftcase/rainpot/internal/repositories/user"
	"github.com/driftcase/rainpot/internal/services/broadcast"
	"go.uber.org/zap"
)

// opTimeout bounds the store work done from timer callbacks, which have
// no caller-supplied context
const opTimeout = 30 * time.Second

// service implements the Service interface
type service struct {
	config      *Config
	rainRepo    rainRepo.Repository
	userRepo    userRepo.Repository
	ledgerRepo  ledgerRepo.Repository
	broadcaster broadcast.Service
	clock       clock.Clock
	scheduler   scheduler.Scheduler
	uuids       uuid.UUID

	mu             sync.Mutex
	tickCanceler   scheduler.Canceler
	windowCanceler scheduler.Canceler
}

// New creates a new rain service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RainRepo == nil {
		return nil, ErrNilRainRepo
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Broadcaster == nil {
		return nil, ErrNilBroadcaster
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.RainDuration <= 0 {
		cfg.RainDuration = DefaultRainDuration
	}

	if cfg.DistributionInterval <= 0 {
		cfg.DistributionInterval = DefaultDistributionInterval
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	if cfg.MinTipAmount <= 0 {
		cfg.MinTipAmount = DefaultMinTipAmount
	}

	if cfg.WagerWindow <= 0 {
		cfg.WagerWindow = DefaultWagerWindow
	}

	return &service{
		config:      cfg,
		rainRepo:    cfg.RainRepo,
		userRepo:    cfg.UserRepo,
		ledgerRepo:  cfg.LedgerRepo,
		broadcaster: cfg.Broadcaster,
		clock:       cfg.Clock,
		scheduler:   cfg.Scheduler,
		uuids:       cfg.UUIDGenerator,
	}, nil
}

// Start ensures the session exists, recovers an interrupted cycle and
// arms the eligibility tick
func (s *service) Start(ctx context.Context) error {
	session, err := s.rainRepo.GetSession(ctx, &rainRepo.GetSessionInput{})
	if err != nil {
		if !errors.Is(err, rainRepo.ErrSessionNotFound) {
			return fmt.Errorf("failed to load rain session: %w", err)
		}

		now := s.clock.Now()
		session, err = s.rainRepo.CreateSession(ctx, &rainRepo.CreateSessionInput{
			Session: &models.RainSession{
				ID:               s.uuids.NewUUID(),
				Pot:              0,
				Status:           models.RainStatusIdle,
				Participants:     []*models.Participant{},
				Tips:             []*models.Tip{},
				RainDuration:     s.config.RainDuration,
				NextDistribution: now.Add(s.config.DistributionInterval),
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create rain session: %w", err)
		}

		logger.Info("created rain session", zap.String("session_id", session.ID))
	}

	switch session.Status {
	case models.RainStatusDistributing:
		// A previous process died mid-distribution; recover the pot
		// into a fresh idle cycle
		if err := s.recoverToIdle(ctx); err != nil {
			return fmt.Errorf("failed to recover interrupted distribution: %w", err)
		}
		logger.Warn("recovered session stuck in distributing",
			zap.String("session_id", session.ID))

	case models.RainStatusRaining:
		remaining := session.WindowEndsAt().Sub(s.clock.Now())
		if remaining < 0 {
			remaining = 0
		}
		s.armWindowTimer(remaining)
		logger.Info("re-armed interrupted join window",
			zap.Duration("remaining", remaining))
	}

	s.mu.Lock()
	s.tickCanceler = s.scheduler.RunEvery(s.config.TickInterval, s.checkSchedule)
	s.mu.Unlock()

	return nil
}

// Stop cancels the eligibility tick and any armed window timer
func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tickCanceler != nil {
		s.tickCanceler.Cancel()
		s.tickCanceler = nil
	}

	if s.windowCanceler != nil {
		s.windowCanceler.Cancel()
		s.windowCanceler = nil
	}
}

// checkSchedule is the periodic eligibility tick
func (s *service) checkSchedule() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	session, err := s.rainRepo.GetSession(ctx, &rainRepo.GetSessionInput{})
	if err != nil {
		logger.Error("eligibility check failed to load session", zap.Error(err))
		return
	}

	if session.Status != models.RainStatusIdle {
		return
	}

	if session.Pot <= 0 || s.clock.Now().Before(session.NextDistribution) {
		return
	}

	if _, err := s.RequestStart(ctx, &RequestStartInput{}); err != nil {
		logger.Error("scheduled rain start failed", zap.Error(err))
	}
}

// RequestStart opens the join window. It is idempotent: if the session
// is not idle or the pot is empty nothing happens and Started is false.
func (s *service) RequestStart(ctx context.Context, input *RequestStartInput) (*RequestStartOutput, error) {
	now := s.clock.Now()

	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusIdle},
		Update: func(session *models.RainSession) error {
			if session.Pot <= 0 {
				return ErrPotEmpty
			}

			session.Status = models.RainStatusRaining
			session.RainStartTime = now
			session.RainDuration = s.config.RainDuration
			session.Participants = []*models.Participant{}
			session.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, rainRepo.ErrStatusConflict) || errors.Is(err, ErrPotEmpty) {
			return &RequestStartOutput{Started: false}, nil
		}
		return nil, fmt.Errorf("failed to start rain: %w", err)
	}

	endsAt := session.WindowEndsAt()

	s.publish(ctx, broadcast.EventRainStarted, &StartedPayload{
		Pot:      session.Pot,
		Duration: int64(session.RainDuration / time.Second),
		EndsAt:   endsAt,
	})

	s.armWindowTimer(session.RainDuration)

	logger.Info("rain started",
		zap.Float64("pot", session.Pot),
		zap.Time("ends_at", endsAt),
		zap.String("triggered_by", triggerLabel(input)))

	return &RequestStartOutput{
		Started: true,
		EndsAt:  endsAt,
	}, nil
}

// Join registers the caller as a participant, snapshotting level and
// trailing wager at join time
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	usr, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	now := s.clock.Now()

	wager, err := s.userRepo.GetWagerTotal(ctx, &userRepo.GetWagerTotalInput{
		UserID: usr.ID,
		Since:  now.Add(-s.config.WagerWindow),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load wager total: %w", err)
	}

	participant := &models.Participant{
		ID:       s.uuids.NewUUID(),
		UserID:   usr.ID,
		Username: usr.Username,
		Avatar:   usr.Avatar,
		Level:    usr.Level,
		Wager7d:  wager.Total,
		JoinedAt: now,
	}

	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusRaining},
		Update: func(session *models.RainSession) error {
			if session.HasParticipant(participant.UserID) {
				return ErrAlreadyJoined
			}

			session.Participants = append(session.Participants, participant)
			session.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, rainRepo.ErrStatusConflict) {
			return nil, ErrNotRaining
		}
		if errors.Is(err, ErrAlreadyJoined) {
			return nil, ErrAlreadyJoined
		}
		return nil, fmt.Errorf("failed to join rain: %w", err)
	}

	s.publish(ctx, broadcast.EventRainParticipantJoined, &JoinedPayload{
		ParticipantsCount: len(session.Participants),
		Username:          usr.Username,
	})
	s.publishStatus(ctx, session)

	return &JoinOutput{
		ParticipantsCount: len(session.Participants),
	}, nil
}

// Tip debits the caller and adds the amount to the pot
func (s *service) Tip(ctx context.Context, input *TipInput) (*TipOutput, error) {
	if !validAmount(input.Amount, s.config.MinTipAmount) {
		return nil, ErrInvalidAmount
	}

	usr, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	debit, err := s.ledgerRepo.Debit(ctx, &ledgerRepo.DebitInput{
		UserID: usr.ID,
		Amount: input.Amount,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrInsufficientFunds) || errors.Is(err, ledgerRepo.ErrUnknownUser) {
			return nil, ErrInsufficientBalance
		}
		return nil, fmt.Errorf("failed to debit tip: %w", err)
	}

	now := s.clock.Now()
	tip := &models.Tip{
		ID:       s.uuids.NewUUID(),
		UserID:   usr.ID,
		Username: usr.Username,
		Amount:   input.Amount,
		Date:     now,
	}

	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusIdle, models.RainStatusRaining},
		Update: func(session *models.RainSession) error {
			session.Pot += tip.Amount
			session.Tips = append(session.Tips, tip)
			session.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		// The debit already happened; give the money back before
		// reporting the conflict
		s.refund(ctx, usr.ID, input.Amount)

		if errors.Is(err, rainRepo.ErrStatusConflict) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to apply tip: %w", err)
	}

	s.publishStatus(ctx, session)

	logger.Info("tip added to pot",
		zap.String("user_id", usr.ID),
		zap.Float64("amount", tip.Amount),
		zap.Float64("pot", session.Pot))

	return &TipOutput{
		Pot:     session.Pot,
		Balance: debit.Balance,
	}, nil
}

// AdminAddPot adds to the pot without debiting the caller
func (s *service) AdminAddPot(ctx context.Context, input *AdminAddPotInput) (*AdminAddPotOutput, error) {
	usr, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.CallerID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if !usr.CanManageRain() {
		return nil, ErrUnauthorized
	}

	if !validAmount(input.Amount, s.config.MinTipAmount) {
		return nil, ErrInvalidAmount
	}

	now := s.clock.Now()
	tip := &models.Tip{
		ID:                s.uuids.NewUUID(),
		UserID:            usr.ID,
		Username:          usr.Username,
		Amount:            input.Amount,
		AdminContribution: true,
		Date:              now,
	}

	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusIdle, models.RainStatusRaining},
		Update: func(session *models.RainSession) error {
			session.Pot += tip.Amount
			session.Tips = append(session.Tips, tip)
			session.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, rainRepo.ErrStatusConflict) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to add to pot: %w", err)
	}

	s.publishStatus(ctx, session)

	logger.Info("admin added to pot",
		zap.String("caller_id", usr.ID),
		zap.Float64("amount", tip.Amount),
		zap.Float64("pot", session.Pot))

	return &AdminAddPotOutput{
		Pot: session.Pot,
	}, nil
}

// GetStatus returns the read-only session projection
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	session, err := s.rainRepo.GetSession(ctx, &rainRepo.GetSessionInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load rain session: %w", err)
	}

	return &GetStatusOutput{
		Status: StatusPayloadFromSession(session),
	}, nil
}

// GetHistory returns the retained distribution records, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	out, err := s.rainRepo.GetHistory(ctx, &rainRepo.GetHistoryInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load distribution history: %w", err)
	}

	return &GetHistoryOutput{
		Records: out.Records,
	}, nil
}

// distribute is the window-timer callback closing the current cycle
func (s *service) distribute() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := s.runDistribution(ctx); err != nil {
		logger.Error("distribution failed", zap.Error(err))
	}
}

// runDistribution executes the raining → distributing → idle sequence
func (s *service) runDistribution(ctx context.Context) error {
	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusRaining},
		Update: func(session *models.RainSession) error {
			session.Status = models.RainStatusDistributing
			session.UpdatedAt = s.clock.Now()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, rainRepo.ErrStatusConflict) {
			// Another trigger already closed this window
			logger.Debug("distribution skipped, window already closed")
			return nil
		}
		return fmt.Errorf("failed to close join window: %w", err)
	}

	pot := session.Pot
	roster := session.Participants

	if len(roster) == 0 {
		s.publish(ctx, broadcast.EventRainEnded, &EndedPayload{
			Message: "rain ended with no participants",
			Pot:     pot,
		})
		logger.Info("rain ended with no participants", zap.Float64("pot", pot))
		return s.reset(ctx)
	}

	payouts := Allocate(roster, pot, s.config.MinWagerRequirement)
	if len(payouts) == 0 {
		s.publish(ctx, broadcast.EventRainEnded, &EndedPayload{
			Message: "rain ended with no eligible participants",
			Pot:     pot,
		})
		logger.Info("rain ended with no eligible participants",
			zap.Float64("pot", pot),
			zap.Int("participants", len(roster)))
		return s.reset(ctx)
	}

	now := s.clock.Now()
	winners := make([]*models.Winner, 0, len(payouts))
	winnerPayloads := make([]WinnerPayload, 0, len(payouts))

	for _, payout := range payouts {
		p := payout.Participant

		if payout.Amount > 0 {
			_, err := s.ledgerRepo.Credit(ctx, &ledgerRepo.CreditInput{
				UserID: p.UserID,
				Amount: payout.Amount,
			})
			if err != nil {
				s.recoverAfterFailure(ctx, err)
				return fmt.Errorf("failed to credit winner %s: %w", p.UserID, err)
			}
		}

		winners = append(winners, &models.Winner{
			UserID:   p.UserID,
			Username: p.Username,
			Amount:   payout.Amount,
			Level:    p.Level,
			Wager7d:  p.Wager7d,
		})
		winnerPayloads = append(winnerPayloads, WinnerPayload{
			UserID:   p.UserID,
			Username: p.Username,
			Amount:   payout.Amount,
			Level:    p.Level,
			Wager7d:  p.Wager7d,
		})
	}

	err = s.rainRepo.AppendHistory(ctx, &rainRepo.AppendHistoryInput{
		Record: &models.DistributionRecord{
			ID:               s.uuids.NewUUID(),
			Amount:           pot,
			ParticipantCount: len(roster),
			Winners:          winners,
			DistributedAt:    now,
		},
	})
	if err != nil {
		// Winners are already credited; log and move on rather than
		// risk a double payout on retry
		logger.Error("failed to record distribution history", zap.Error(err))
	}

	s.publish(ctx, broadcast.EventRainDistributed, &DistributedPayload{
		Pot:                  pot,
		Winners:              winnerPayloads,
		TotalParticipants:    len(roster),
		EligibleParticipants: len(payouts),
	})

	logger.Info("rain distributed",
		zap.Float64("pot", pot),
		zap.Int("total_participants", len(roster)),
		zap.Int("eligible_participants", len(payouts)))

	return s.reset(ctx)
}

// reset returns a distributing session to idle with a cleared pot and
// the next cycle scheduled
func (s *service) reset(ctx context.Context) error {
	now := s.clock.Now()

	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusDistributing},
		Update: func(session *models.RainSession) error {
			session.Pot = 0
			session.Status = models.RainStatusIdle
			session.Participants = []*models.Participant{}
			session.Tips = []*models.Tip{}
			session.RainStartTime = time.Time{}
			session.LastDistribution = now
			session.NextDistribution = now.Add(s.config.DistributionInterval)
			session.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to reset rain session: %w", err)
	}

	s.publishStatus(ctx, session)
	return nil
}

// recoverToIdle returns a distributing session to idle with the pot
// preserved so the next cycle retries the payout
func (s *service) recoverToIdle(ctx context.Context) error {
	now := s.clock.Now()

	session, err := s.rainRepo.UpdateSession(ctx, &rainRepo.UpdateSessionInput{
		ExpectedStatus: []models.RainStatus{models.RainStatusDistributing},
		Update: func(session *models.RainSession) error {
			session.Status = models.RainStatusIdle
			session.Participants = []*models.Participant{}
			session.RainStartTime = time.Time{}
			session.NextDistribution = now.Add(s.config.DistributionInterval)
			session.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		return err
	}

	s.publishStatus(ctx, session)
	return nil
}

// recoverAfterFailure is the mid-distribution error path; the session
// must never stay stuck in distributing
func (s *service) recoverAfterFailure(ctx context.Context, cause error) {
	logger.Error("recovering session after distribution failure", zap.Error(cause))

	if err := s.recoverToIdle(ctx); err != nil {
		logger.Error("failed to recover session to idle", zap.Error(err))
	}
}

// armWindowTimer schedules the raining → distributing transition,
// replacing any previously armed timer
func (s *service) armWindowTimer(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.windowCanceler != nil {
		s.windowCanceler.Cancel()
	}

	s.windowCanceler = s.scheduler.RunAfter(delay, s.distribute)
}

// refund returns a debited tip after the pot update was rejected
func (s *service) refund(ctx context.Context, userID string, amount float64) {
	if _, err := s.ledgerRepo.Credit(ctx, &ledgerRepo.CreditInput{
		UserID: userID,
		Amount: amount,
	}); err != nil {
		logger.Error("failed to refund rejected tip",
			zap.String("user_id", userID),
			zap.Float64("amount", amount),
			zap.Error(err))
	}
}

// publish sends an event through the broadcaster, logging failures
func (s *service) publish(ctx context.Context, event string, payload interface{}) {
	err := s.broadcaster.Publish(ctx, &broadcast.PublishInput{
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		logger.Error("failed to publish event",
			zap.String("event", event),
			zap.Error(err))
	}
}

// publishStatus broadcasts the current session projection
func (s *service) publishStatus(ctx context.Context, session *models.RainSession) {
	s.publish(ctx, broadcast.EventRainStatus, StatusPayloadFromSession(session))
}

// validAmount checks a contribution amount against the configured minimum
func validAmount(amount, minimum float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= minimum
}

func triggerLabel(input *RequestStartInput) string {
	if input == nil || input.TriggeredBy == "" {
		return "scheduler"
	}
	return input.TriggeredBy
}
