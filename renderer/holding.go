package renderer

import "github.com/kmehta/papertrader"

// Holding renders a holding report to a markdown string.
func Holding(r *papertrader.HoldingReport) string {
	return renderTemplate("holding", "holding.md", r)
}
