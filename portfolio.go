package papertrader

import "fmt"

// Portfolio tracks how many shares of each security a user holds. A symbol
// with no entry is a zero holding.
type Portfolio struct {
	holdings map[string]Quantity
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]Quantity)}
}

// Increase adds qty shares of symbol to the holdings. qty must be positive;
// non-positive quantities leave the portfolio unchanged.
func (p *Portfolio) Increase(symbol string, qty Quantity) {
	if !qty.IsPositive() {
		return
	}
	p.holdings[symbol] = p.holdings[symbol].Add(qty)
}

// Decrease removes qty shares of symbol from the holdings. It fails with
// ErrInsufficientHoldings when fewer than qty shares are held, leaving the
// portfolio unchanged. This is the sole gate against negative holdings.
func (p *Portfolio) Decrease(symbol string, qty Quantity) error {
	if !qty.IsPositive() {
		return fmt.Errorf("decrease quantity must be positive, got %s", qty)
	}
	held := p.holdings[symbol]
	if held.LessThan(qty) {
		return fmt.Errorf("cannot remove %s shares of %s, only %s held: %w",
			qty, symbol, held, ErrInsufficientHoldings)
	}
	remaining := held.Sub(qty)
	if remaining.IsZero() {
		delete(p.holdings, symbol)
		return nil
	}
	p.holdings[symbol] = remaining
	return nil
}

// Position returns the held quantity for a symbol, zero if none.
func (p *Portfolio) Position(symbol string) Quantity {
	return p.holdings[symbol]
}

// Holdings returns a snapshot of the holdings. Fully sold positions are
// omitted: every returned quantity is positive.
func (p *Portfolio) Holdings() map[string]Quantity {
	snapshot := make(map[string]Quantity, len(p.holdings))
	for symbol, qty := range p.holdings {
		snapshot[symbol] = qty
	}
	return snapshot
}
