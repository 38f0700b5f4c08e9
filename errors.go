package papertrader

import "errors"

// Business failures returned by the trading operations. They are wrapped with
// context, match them with errors.Is.
var (
	// ErrStockNotFound reports a symbol absent from the market catalog.
	ErrStockNotFound = errors.New("stock not found")
	// ErrInsufficientFunds reports a debit larger than the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHoldings reports a sell larger than the held position.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
)
