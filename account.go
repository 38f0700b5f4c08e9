package papertrader

import "fmt"

// Account holds a user's cash balance. The balance never goes negative:
// Debit is the sole gate.
type Account struct {
	balance Money
}

// NewAccount creates an account with the given opening balance.
func NewAccount(opening Money) (*Account, error) {
	if opening.IsNegative() {
		return nil, fmt.Errorf("opening balance cannot be negative, got %s", opening)
	}
	return &Account{balance: opening}, nil
}

// Credit adds a non-negative amount to the balance. Negative amounts leave
// the account unchanged.
func (a *Account) Credit(amount Money) {
	if amount.IsNegative() {
		return
	}
	a.balance = a.balance.Add(amount)
}

// Debit subtracts amount from the balance. It fails with
// ErrInsufficientFunds when the balance is smaller than amount, leaving the
// account unchanged.
func (a *Account) Debit(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("debit amount cannot be negative, got %s", amount)
	}
	if a.balance.LessThan(amount) {
		return fmt.Errorf("cannot debit %s, balance is only %s: %w",
			amount, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Balance returns the current cash balance.
func (a *Account) Balance() Money {
	return a.balance
}
