package renderer

import "github.com/kmehta/papertrader"

// Market renders a market report to a markdown string.
func Market(r *papertrader.MarketReport) string {
	return renderTemplate("market", "market.md", r)
}
