package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/driftcase/rainpot/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for the balance ledger
type Repository interface {
	// GetBalance retrieves a user's spendable balance
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// SetBalance overwrites a user's balance (account provisioning)
	SetBalance(ctx context.Context, input *SetBalanceInput) error

	// Debit atomically subtracts from a balance, failing if the funds
	// are insufficient
	Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error)

	// Credit atomically adds to a balance
	Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error)
}
