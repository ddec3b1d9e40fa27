package rain

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/driftcase/rainpot/internal/repositories/rain Repository

import (
	"context"

	"github.com/driftcase/rainpot/internal/models"
)

// Repository defines the interface for rain session persistence
type Repository interface {
	// GetSession retrieves the singleton rain session
	GetSession(ctx context.Context, input *GetSessionInput) (*models.RainSession, error)

	// CreateSession persists a new session if none exists yet
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.RainSession, error)

	// UpdateSession applies a conditional atomic mutation to the session
	UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.RainSession, error)

	// AppendHistory prepends a distribution record to the bounded history log
	AppendHistory(ctx context.Context, input *AppendHistoryInput) error

	// GetHistory retrieves the most recent distribution records
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
