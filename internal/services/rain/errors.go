package rain

// RainError is a custom error type for rain-related errors
type RainError string

// Error implements the error interface
func (e RainError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotRaining          RainError = "rain is not active"
	ErrAlreadyJoined       RainError = "already joined this rain"
	ErrInvalidAmount       RainError = "invalid amount"
	ErrInsufficientBalance RainError = "insufficient balance"
	ErrNoActiveSession     RainError = "no active session"
	ErrUnauthorized        RainError = "unauthorized"
	ErrInvalidSession      RainError = "invalid session"
	ErrPotEmpty            RainError = "pot is empty"
	ErrNilConfig           RainError = "config cannot be nil"
	ErrNilRainRepo         RainError = "rain repository cannot be nil"
	ErrNilUserRepo         RainError = "user repository cannot be nil"
	ErrNilLedgerRepo       RainError = "ledger repository cannot be nil"
	ErrNilBroadcaster      RainError = "broadcaster cannot be nil"
	ErrNilClock            RainError = "clock cannot be nil"
	ErrNilScheduler        RainError = "scheduler cannot be nil"
	ErrNilUUIDGenerator    RainError = "UUID generator cannot be nil"
)
