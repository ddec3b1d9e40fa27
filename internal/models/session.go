package models

import (
	"time"
)

// RainStatus represents the current state of the rain session
type RainStatus string

const (
	// RainStatusIdle indicates the session is accumulating tips and waiting for the cycle timer
	RainStatusIdle RainStatus = "idle"

	// RainStatusRaining indicates the join window is open
	RainStatusRaining RainStatus = "raining"

	// RainStatusDistributing indicates a payout is being computed and credited
	RainStatusDistributing RainStatus = "distributing"
)

// RainSession is the single long-lived pooled-distribution entity.
// Exactly one session exists per deployment; it is reset in place after
// every distribution, never deleted.
type RainSession struct {
	// ID is the unique identifier for the session
	ID string

	// Pot is the accumulated contribution amount awaiting distribution
	Pot float64

	// Status is the current state of the session
	Status RainStatus

	// Participants holds the join-window roster, unique by user ID
	Participants []*Participant

	// Tips is the contribution log for the current cycle
	Tips []*Tip

	// RainStartTime is when the current join window opened; zero when idle
	RainStartTime time.Time

	// RainDuration is the configured join-window length
	RainDuration time.Duration

	// NextDistribution is when an idle session becomes eligible to start
	NextDistribution time.Time

	// LastDistribution is when the most recent distribution completed
	LastDistribution time.Time

	// CreatedAt is when the session was first created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// HasParticipant reports whether the user is already on the current roster
func (s *RainSession) HasParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// WindowEndsAt returns when the current join window closes
func (s *RainSession) WindowEndsAt() time.Time {
	return s.RainStartTime.Add(s.RainDuration)
}
