package ledger

type GetBalanceInput struct {
	UserID string
}

type GetBalanceOutput struct {
	Balance float64
}

type SetBalanceInput struct {
	UserID  string
	Balance float64
}

type DebitInput struct {
	UserID string
	Amount float64
}

type DebitOutput struct {
	// Balance is the balance after the debit
	Balance float64
}

type CreditInput struct {
	UserID string
	Amount float64
}

type CreditOutput struct {
	// Balance is the balance after the credit
	Balance float64
}
