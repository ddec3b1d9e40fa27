package user

import (
	"time"

	"github.com/driftcase/rainpot/internal/models"
)

type SaveUserInput struct {
	User *models.User
}

type GetUserInput struct {
	UserID string
}

type RecordWagerInput struct {
	UserID string
	Amount float64
	At     time.Time
}

type GetWagerTotalInput struct {
	UserID string

	// Since bounds the rolling window; entries older than this are
	// dropped from the log
	Since time.Time
}

type GetWagerTotalOutput struct {
	Total float64
}
