package rain

import (
	"time"

	"github.com/driftcase/rainpot/internal/common/clock"
	"github.com/driftcase/rainpot/internal/common/scheduler"
	"github.com/driftcase/rainpot/internal/common/uuid"
	"github.com/driftcase/rainpot/internal/models"
	ledgerRepo "github.com/driftcase/rainpot/internal/repositories/ledger"
	rainRepo "github.com/driftcase/rainpot/internal/repositories/rain"
	userRepo "github.com/driftcase/rainpot/internal/repositories/user"
	"github.com/driftcase/rainpot/internal/services/broadcast"
)

const (
	// DefaultRainDuration is the join-window length
	DefaultRainDuration = time.Minute

	// DefaultDistributionInterval is the cycle length
	DefaultDistributionInterval = 2 * time.Hour

	// DefaultTickInterval is how often idle sessions are checked for
	// eligibility
	DefaultTickInterval = time.Minute

	// DefaultMinTipAmount is the smallest accepted tip
	DefaultMinTipAmount = 1.0

	// DefaultWagerWindow is the trailing window for wager eligibility
	DefaultWagerWindow = 7 * 24 * time.Hour
)

// Config holds configuration for the rain service
type Config struct {
	// RainDuration is the join-window length
	RainDuration time.Duration

	// DistributionInterval is added to NextDistribution on reset
	DistributionInterval time.Duration

	// TickInterval is the eligibility check cadence
	TickInterval time.Duration

	// MinTipAmount is the smallest accepted tip
	MinTipAmount float64

	// MinWagerRequirement is the trailing wager needed for a payout share
	MinWagerRequirement float64

	// WagerWindow is the trailing window for the wager snapshot
	WagerWindow time.Duration

	// Repository dependencies
	RainRepo   rainRepo.Repository
	UserRepo   userRepo.Repository
	LedgerRepo ledgerRepo.Repository

	// Service dependencies
	Broadcaster   broadcast.Service
	Clock         clock.Clock
	Scheduler     scheduler.Scheduler
	UUIDGenerator uuid.UUID
}

// RequestStartInput contains parameters for starting a rain
type RequestStartInput struct {
	// TriggeredBy is the user ID of a manual trigger; empty for the
	// scheduler
	TriggeredBy string
}

// RequestStartOutput contains the result of a start request
type RequestStartOutput struct {
	// Started reports whether a new join window was opened
	Started bool

	// EndsAt is when the window closes; zero when Started is false
	EndsAt time.Time
}

// JoinInput contains parameters for joining the open window
type JoinInput struct {
	// UserID is the ID of the joining user
	UserID string
}

// JoinOutput contains the result of a join
type JoinOutput struct {
	// ParticipantsCount is the roster size after the join
	ParticipantsCount int
}

// TipInput contains parameters for tipping the pot
type TipInput struct {
	// UserID is the ID of the tipping user
	UserID string

	// Amount is the tipped amount
	Amount float64
}

// TipOutput contains the result of a tip
type TipOutput struct {
	// Pot is the pot after the tip
	Pot float64

	// Balance is the caller's balance after the debit
	Balance float64
}

// AdminAddPotInput contains parameters for a privileged top-up
type AdminAddPotInput struct {
	// CallerID is the ID of the privileged caller
	CallerID string

	// Amount is the added amount
	Amount float64
}

// AdminAddPotOutput contains the result of a top-up
type AdminAddPotOutput struct {
	// Pot is the pot after the top-up
	Pot float64
}

// GetStatusInput contains parameters for the status projection
type GetStatusInput struct {
}

// GetStatusOutput contains the status projection
type GetStatusOutput struct {
	Status *StatusPayload
}

// GetHistoryInput contains parameters for reading history
type GetHistoryInput struct {
	// Limit caps the number of records; 0 means all retained
	Limit int
}

// GetHistoryOutput contains the retained distribution records
type GetHistoryOutput struct {
	Records []*models.DistributionRecord
}

// StatusPayload is the rain-status event body. Window fields are only
// present while raining.
type StatusPayload struct {
	Pot               float64           `json:"pot"`
	NextDistribution  time.Time         `json:"nextDistribution"`
	Status            models.RainStatus `json:"status"`
	RainStartTime     *time.Time        `json:"rainStartTime,omitempty"`
	ParticipantsCount *int              `json:"participantsCount,omitempty"`
	EndsAt            *time.Time        `json:"endsAt,omitempty"`
	Duration          *int64            `json:"duration,omitempty"`
}

// StartedPayload is the rain-started event body
type StartedPayload struct {
	Pot      float64   `json:"pot"`
	Duration int64     `json:"duration"`
	EndsAt   time.Time `json:"endsAt"`
}

// JoinedPayload is the rain-participant-joined event body
type JoinedPayload struct {
	ParticipantsCount int    `json:"participantsCount"`
	Username          string `json:"username"`
}

// EndedPayload is the rain-ended event body
type EndedPayload struct {
	Message string  `json:"message"`
	Pot     float64 `json:"pot"`
}

// WinnerPayload is one winner entry inside rain-distributed
type WinnerPayload struct {
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Amount   float64 `json:"amount"`
	Level    int     `json:"level"`
	Wager7d  float64 `json:"wager7d"`
}

// DistributedPayload is the rain-distributed event body
type DistributedPayload struct {
	Pot                  float64         `json:"pot"`
	Winners              []WinnerPayload `json:"winners"`
	TotalParticipants    int             `json:"totalParticipants"`
	EligibleParticipants int             `json:"eligibleParticipants"`
}

// ResponsePayload is the rain-response direct reply body
type ResponsePayload struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// StatusPayloadFromSession builds the rain-status projection
func StatusPayloadFromSession(session *models.RainSession) *StatusPayload {
	payload := &StatusPayload{
		Pot:              session.Pot,
		NextDistribution: session.NextDistribution,
		Status:           session.Status,
	}

	if session.Status == models.RainStatusRaining {
		start := session.RainStartTime
		count := len(session.Participants)
		endsAt := session.WindowEndsAt()
		duration := int64(session.RainDuration / time.Second)

		payload.RainStartTime = &start
		payload.ParticipantsCount = &count
		payload.EndsAt = &endsAt
		payload.Duration = &duration
	}

	return payload
}
