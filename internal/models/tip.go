package models

import (
	"time"
)

// Tip records a single contribution to the pot
type Tip struct {
	// ID is the unique identifier for the tip
	ID string

	// UserID is the ID of the contributing user
	UserID string

	// Username is the display name of the contributing user
	Username string

	// Amount is the contributed amount
	Amount float64

	// AdminContribution marks a privileged top-up that did not debit the
	// contributor's balance
	AdminContribution bool

	// Date is when the tip was made
	Date time.Time
}
