package rain

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/driftcase/rainpot/internal/services/rain Service

import "context"

// Service defines the interface for rain operations
type Service interface {
	// Start arms the eligibility tick and recovers an interrupted cycle
	Start(ctx context.Context) error

	// Stop cancels all timers owned by the engine
	Stop()

	// RequestStart opens the join window if the session is idle and the
	// pot is funded; otherwise it is a no-op
	RequestStart(ctx context.Context, input *RequestStartInput) (*RequestStartOutput, error)

	// Join registers the caller as a participant in the open window
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Tip debits the caller and adds to the pot
	Tip(ctx context.Context, input *TipInput) (*TipOutput, error)

	// AdminAddPot adds to the pot without debiting the caller
	AdminAddPot(ctx context.Context, input *AdminAddPotInput) (*AdminAddPotOutput, error)

	// GetStatus returns the read-only session projection
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// GetHistory returns the retained distribution records
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
