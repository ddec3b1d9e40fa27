package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/driftcase/rainpot/internal/repositories/user Repository

import (
	"context"

	"github.com/driftcase/rainpot/internal/models"
)

// Repository defines the interface for the user directory
type Repository interface {
	// SaveUser persists a user profile
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// RecordWager appends a wager entry to the user's rolling log
	RecordWager(ctx context.Context, input *RecordWagerInput) error

	// GetWagerTotal sums the user's wagers since the given time
	GetWagerTotal(ctx context.Context, input *GetWagerTotalInput) (*GetWagerTotalOutput, error)
}
