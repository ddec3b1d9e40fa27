package models

import (
	"time"
)

// Participant is a user's registration in the current rain cycle.
// Level and Wager7d are snapshots taken at join time and are not
// re-evaluated later in the same cycle.
type Participant struct {
	// ID is a unique identifier for this participation
	ID string

	// UserID is the ID of the joining user
	UserID string

	// Username is the display name of the user
	Username string

	// Avatar is the user's avatar URL
	Avatar string

	// Level is the user's level at join time
	Level int

	// Wager7d is the user's trailing-7-day wager total at join time
	Wager7d float64

	// JoinedAt is when the user joined the window
	JoinedAt time.Time
}
