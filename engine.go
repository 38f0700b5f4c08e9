package papertrader

import (
	"fmt"
	"sort"
	"time"
)

// TradeEngine executes buy and sell orders against the market, debiting and
// crediting a user's account and portfolio as a single all-or-nothing
// operation. Every executed trade is recorded in the session journal.
//
// The engine is single-threaded by design: one caller issues one request at
// a time. Extending to concurrent users requires per-user mutual exclusion
// and synchronized market ticks.
type TradeEngine struct {
	market  *Market
	journal *Journal
}

// NewTradeEngine creates an engine trading on the given market.
func NewTradeEngine(market *Market) *TradeEngine {
	return &TradeEngine{market: market, journal: NewJournal()}
}

// ExecuteBuy buys qty shares of symbol at the current market price. It fails
// with ErrStockNotFound for an unknown symbol and ErrInsufficientFunds when
// the cost exceeds the user's balance; on failure neither the account nor
// the portfolio is touched. On success it returns the recorded trade.
func (e *TradeEngine) ExecuteBuy(u *User, symbol string, qty Quantity) (Trade, error) {
	quote, err := e.market.Lookup(symbol)
	if err != nil {
		return Trade{}, err
	}
	if !qty.IsPositive() {
		return Trade{}, fmt.Errorf("buy quantity must be positive, got %s", qty)
	}
	cost := quote.Price.Mul(qty)
	if err := u.Account().Debit(cost); err != nil {
		return Trade{}, fmt.Errorf("cannot buy %s shares of %s: %w", qty, symbol, err)
	}
	// Cannot fail once the debit went through: qty is already validated.
	u.Portfolio().Increase(symbol, qty)

	t := newTrade(SideBuy, symbol, qty, quote.Price)
	e.journal.append(t)
	return t, nil
}

// ExecuteSell sells qty shares of symbol at the current market price. It
// fails with ErrStockNotFound for an unknown symbol and
// ErrInsufficientHoldings when fewer than qty shares are held; on failure
// neither the portfolio nor the account is touched. On success it returns
// the recorded trade.
func (e *TradeEngine) ExecuteSell(u *User, symbol string, qty Quantity) (Trade, error) {
	quote, err := e.market.Lookup(symbol)
	if err != nil {
		return Trade{}, err
	}
	if !qty.IsPositive() {
		return Trade{}, fmt.Errorf("sell quantity must be positive, got %s", qty)
	}
	if err := u.Portfolio().Decrease(symbol, qty); err != nil {
		return Trade{}, fmt.Errorf("cannot sell %s shares of %s: %w", qty, symbol, err)
	}
	// Proceeds use the price observed at lookup.
	u.Account().Credit(quote.Price.Mul(qty))

	t := newTrade(SideSell, symbol, qty, quote.Price)
	e.journal.append(t)
	return t, nil
}

// TickMarket applies one simulated market update to every price.
func (e *TradeEngine) TickMarket() {
	e.market.Tick()
}

// MarketReport returns a snapshot of all current quotes in catalog order.
func (e *TradeEngine) MarketReport() *MarketReport {
	return &MarketReport{Time: time.Now(), Quotes: e.market.Securities()}
}

// HoldingReport joins the user's holdings with current market prices. Rows
// come in catalog order; a held symbol that no longer resolves in the
// catalog fails with ErrStockNotFound. Should not occur with a fixed
// catalog, but holdings and catalog are independently owned.
func (e *TradeEngine) HoldingReport(u *User) (*HoldingReport, error) {
	holdings := u.Portfolio().Holdings()

	report := &HoldingReport{
		User: u.Name(),
		Cash: u.Account().Balance(),
	}
	report.Total = report.Cash

	for _, quote := range e.market.Securities() {
		symbol := quote.Security.Symbol()
		qty, ok := holdings[symbol]
		if !ok {
			continue
		}
		delete(holdings, symbol)
		value := quote.Price.Mul(qty)
		report.Rows = append(report.Rows, HoldingRow{
			Symbol:   symbol,
			Name:     quote.Security.Name(),
			Quantity: qty,
			Price:    quote.Price,
			Value:    value,
		})
		report.Total = report.Total.Add(value)
	}

	if len(holdings) > 0 {
		orphans := make([]string, 0, len(holdings))
		for symbol := range holdings {
			orphans = append(orphans, symbol)
		}
		sort.Strings(orphans)
		return nil, fmt.Errorf("held symbols %v are missing from the catalog: %w",
			orphans, ErrStockNotFound)
	}
	return report, nil
}

// Trades returns the session's executed trades in execution order.
func (e *TradeEngine) Trades() []Trade {
	return e.journal.Trades()
}
