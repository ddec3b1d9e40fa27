package models

import (
	"time"
)

// Winner captures one participant's payout inside a distribution record
type Winner struct {
	// UserID is the ID of the winning user
	UserID string

	// Username is the display name of the winning user
	Username string

	// Amount is the credited payout
	Amount float64

	// Level is the user's level snapshot used for weighting
	Level int

	// Wager7d is the wager snapshot used for weighting
	Wager7d float64
}

// DistributionRecord is an immutable history entry for one completed cycle
type DistributionRecord struct {
	// ID is the unique identifier for the record
	ID string

	// Amount is the pot that was distributed
	Amount float64

	// ParticipantCount is the size of the raw roster at window close
	ParticipantCount int

	// Winners holds the credited payouts
	Winners []*Winner

	// DistributedAt is when the distribution completed
	DistributedAt time.Time
}
