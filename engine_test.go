package papertrader

import (
	"errors"
	"testing"
)

// testSession creates a fresh engine on the default catalog and a user with
// the given opening balance. The market random source is seeded but never
// ticked by these tests, so prices stay at their listing values.
func testSession(t *testing.T, opening Money) (*TradeEngine, *User) {
	t.Helper()
	e := NewTradeEngine(testMarket(t, 1))
	u, err := NewUser("trader", opening)
	if err != nil {
		t.Fatalf("NewUser() failed: %v", err)
	}
	return e, u
}

func TestTradeEngine_ExecuteBuy(t *testing.T) {
	e, u := testSession(t, USD(10000.0))

	trade, err := e.ExecuteBuy(u, "AAPL", Q(10))
	if err != nil {
		t.Fatalf("ExecuteBuy(AAPL, 10) failed: %v", err)
	}

	if got := u.Account().Balance(); !got.Equal(USD(8500.0)) {
		t.Errorf("balance = %s after buying 10 AAPL at $150.00, want $8,500.00", got)
	}
	if got := u.Portfolio().Position("AAPL"); !got.Equal(Q(10)) {
		t.Errorf("holdings[AAPL] = %s, want 10", got)
	}
	if trade.Side != SideBuy || trade.Symbol != "AAPL" {
		t.Errorf("recorded trade = %+v, want a buy of AAPL", trade)
	}
	if !trade.Amount.Equal(USD(1500.0)) {
		t.Errorf("trade amount = %s, want $1,500.00", trade.Amount)
	}
	if trade.ID == "" {
		t.Error("recorded trade has no ID")
	}
}

func TestTradeEngine_BuyInsufficientFunds(t *testing.T) {
	e, u := testSession(t, USD(1000.0))

	// 10 * $150.00 = $1,500.00 > $1,000.00
	_, err := e.ExecuteBuy(u, "AAPL", Q(10))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("ExecuteBuy error = %v, want ErrInsufficientFunds", err)
	}
	// All-or-nothing: neither account nor portfolio moved.
	if got := u.Account().Balance(); !got.Equal(USD(1000.0)) {
		t.Errorf("balance = %s after failed buy, want $1,000.00", got)
	}
	if got := u.Portfolio().Position("AAPL"); !got.IsZero() {
		t.Errorf("holdings[AAPL] = %s after failed buy, want 0", got)
	}
	if got := len(e.Trades()); got != 0 {
		t.Errorf("journal has %d trades after failed buy, want 0", got)
	}
}

func TestTradeEngine_SellInsufficientHoldings(t *testing.T) {
	e, u := testSession(t, USD(10000.0))
	if _, err := e.ExecuteBuy(u, "AAPL", Q(10)); err != nil {
		t.Fatalf("ExecuteBuy failed: %v", err)
	}
	balance := u.Account().Balance()

	_, err := e.ExecuteSell(u, "AAPL", Q(15))
	if !errors.Is(err, ErrInsufficientHoldings) {
		t.Fatalf("ExecuteSell(AAPL, 15) error = %v, want ErrInsufficientHoldings", err)
	}
	// All-or-nothing: neither portfolio nor account moved.
	if got := u.Portfolio().Position("AAPL"); !got.Equal(Q(10)) {
		t.Errorf("holdings[AAPL] = %s after failed sell, want 10", got)
	}
	if got := u.Account().Balance(); !got.Equal(balance) {
		t.Errorf("balance = %s after failed sell, want %s", got, balance)
	}
}

func TestTradeEngine_UnknownSymbol(t *testing.T) {
	e, u := testSession(t, USD(10000.0))

	if _, err := e.ExecuteBuy(u, "XXXX", Q(1)); !errors.Is(err, ErrStockNotFound) {
		t.Errorf("ExecuteBuy(XXXX) error = %v, want ErrStockNotFound", err)
	}
	if _, err := e.ExecuteSell(u, "XXXX", Q(1)); !errors.Is(err, ErrStockNotFound) {
		t.Errorf("ExecuteSell(XXXX) error = %v, want ErrStockNotFound", err)
	}
	if got := u.Account().Balance(); !got.Equal(USD(10000.0)) {
		t.Errorf("balance = %s after failed trades, want $10,000.00", got)
	}
}

func TestTradeEngine_NonPositiveQuantity(t *testing.T) {
	e, u := testSession(t, USD(10000.0))

	for _, qty := range []Quantity{Q(0), Q(-3)} {
		if _, err := e.ExecuteBuy(u, "AAPL", qty); err == nil {
			t.Errorf("ExecuteBuy(AAPL, %s) succeeded, want error", qty)
		}
		if _, err := e.ExecuteSell(u, "AAPL", qty); err == nil {
			t.Errorf("ExecuteSell(AAPL, %s) succeeded, want error", qty)
		}
	}
	if got := u.Account().Balance(); !got.Equal(USD(10000.0)) {
		t.Errorf("balance = %s after rejected quantities, want $10,000.00", got)
	}
}

func TestTradeEngine_BuySellRoundTrip(t *testing.T) {
	// With no tick between the two trades, selling what was just bought
	// restores the balance exactly.
	e, u := testSession(t, USD(10000.0))

	if _, err := e.ExecuteBuy(u, "GOOGL", Q(3)); err != nil {
		t.Fatalf("ExecuteBuy failed: %v", err)
	}
	if _, err := e.ExecuteSell(u, "GOOGL", Q(3)); err != nil {
		t.Fatalf("ExecuteSell failed: %v", err)
	}

	if got := u.Account().Balance(); !got.Equal(USD(10000.0)) {
		t.Errorf("balance = %s after round trip, want exactly $10,000.00", got)
	}
	if got := u.Portfolio().Position("GOOGL"); !got.IsZero() {
		t.Errorf("holdings[GOOGL] = %s after round trip, want 0", got)
	}
	if got := len(e.Trades()); got != 2 {
		t.Errorf("journal has %d trades, want 2", got)
	}
}

func TestTradeEngine_TickMarket(t *testing.T) {
	e, _ := testSession(t, USD(10000.0))
	before := e.MarketReport()
	e.TickMarket()
	after := e.MarketReport()

	moved := false
	for i := range before.Quotes {
		if !before.Quotes[i].Price.Equal(after.Quotes[i].Price) {
			moved = true
		}
		if after.Quotes[i].Price.LessThan(USD(1.0)) {
			t.Errorf("%s quotes %s, below the $1.00 floor",
				after.Quotes[i].Security.Symbol(), after.Quotes[i].Price)
		}
	}
	if !moved {
		t.Error("no price moved on TickMarket")
	}
}

func TestTradeEngine_HoldingReport(t *testing.T) {
	e, u := testSession(t, USD(10000.0))
	if _, err := e.ExecuteBuy(u, "TSLA", Q(2)); err != nil {
		t.Fatalf("ExecuteBuy failed: %v", err)
	}
	if _, err := e.ExecuteBuy(u, "AAPL", Q(10)); err != nil {
		t.Fatalf("ExecuteBuy failed: %v", err)
	}

	report, err := e.HoldingReport(u)
	if err != nil {
		t.Fatalf("HoldingReport() failed: %v", err)
	}
	if report.User != "trader" {
		t.Errorf("report user = %q, want %q", report.User, "trader")
	}
	// 10000 - 2*700 - 10*150 = 7100
	if !report.Cash.Equal(USD(7100.0)) {
		t.Errorf("report cash = %s, want $7,100.00", report.Cash)
	}
	// Rows come in catalog order: AAPL before TSLA.
	if len(report.Rows) != 2 {
		t.Fatalf("report has %d rows, want 2", len(report.Rows))
	}
	if report.Rows[0].Symbol != "AAPL" || report.Rows[1].Symbol != "TSLA" {
		t.Errorf("rows = [%s %s], want catalog order [AAPL TSLA]",
			report.Rows[0].Symbol, report.Rows[1].Symbol)
	}
	if !report.Rows[1].Value.Equal(USD(1400.0)) {
		t.Errorf("TSLA value = %s, want $1,400.00", report.Rows[1].Value)
	}
	// Total is cash plus holdings at their purchase prices, i.e. unchanged.
	if !report.Total.Equal(USD(10000.0)) {
		t.Errorf("report total = %s, want $10,000.00", report.Total)
	}
}

func TestTradeEngine_HoldingReportOrphanSymbol(t *testing.T) {
	e, u := testSession(t, USD(10000.0))
	// Holdings and catalog are independently owned: inject a position for a
	// symbol the catalog does not know.
	u.Portfolio().Increase("GHOST", Q(1))

	if _, err := e.HoldingReport(u); !errors.Is(err, ErrStockNotFound) {
		t.Errorf("HoldingReport() error = %v, want ErrStockNotFound", err)
	}
}
