package renderer

import (
	"fmt"
	"strings"

	"github.com/kmehta/papertrader"
)

// Trade renders a single trade to a one-line string.
func Trade(t papertrader.Trade) string {
	switch t.Side {
	case papertrader.SideBuy:
		return fmt.Sprintf("Bought %s %s at %s for %s", t.Quantity, t.Symbol, t.Price, t.Amount)
	case papertrader.SideSell:
		return fmt.Sprintf("Sold %s %s at %s for %s", t.Quantity, t.Symbol, t.Price, t.Amount)
	default:
		return string(t.Side)
	}
}

// Trades renders a session's trade history to a markdown string.
func Trades(trades []papertrader.Trade) string {
	var b strings.Builder
	b.WriteString("# Session Trades\n\n")
	if len(trades) == 0 {
		b.WriteString("No trades executed.\n")
		return b.String()
	}
	for _, t := range trades {
		fmt.Fprintf(&b, "- %s %s\n", t.Time.Format("15:04:05"), Trade(t))
	}
	return b.String()
}
