package rain

import "github.com/driftcase/rainpot/internal/models"

type GetSessionInput struct {
}

type CreateSessionInput struct {
	Session *models.RainSession
}

// UpdateSessionInput describes a conditional mutation. The update runs
// against the stored document inside an optimistic transaction; if the
// session's status is not one of ExpectedStatus the update is rejected
// with ErrStatusConflict and nothing is written.
type UpdateSessionInput struct {
	// ExpectedStatus lists the statuses the update is valid from.
	// Empty means any status.
	ExpectedStatus []models.RainStatus

	// Update mutates the session in place. Returning an error aborts
	// the transaction without writing.
	Update func(session *models.RainSession) error
}

type AppendHistoryInput struct {
	Record *models.DistributionRecord
}

type GetHistoryInput struct {
	// Limit caps the number of records returned; 0 means the full
	// retained history
	Limit int
}

type GetHistoryOutput struct {
	Records []*models.DistributionRecord
}
