package papertrader

import "time"

// MarketReport is a snapshot of all quotes, taken after a tick.
type MarketReport struct {
	Time   time.Time
	Quotes []Quote // catalog order
}

// HoldingRow is one position in a holding report.
type HoldingRow struct {
	Symbol   string
	Name     string
	Quantity Quantity
	Price    Money // current unit price
	Value    Money // Price * Quantity
}

// HoldingReport joins a user's holdings with current market prices.
type HoldingReport struct {
	User string
	Cash Money
	Rows []HoldingRow // catalog order, fully sold positions omitted
	// Total is the cash balance plus the market value of all holdings.
	Total Money
}
