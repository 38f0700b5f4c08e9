// Package cmd implements the pt command line application.
package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kmehta/papertrader"
)

// Commands lists the subcommands the pt binary registers.
var Commands = []subcommands.Command{
	&tradeCmd{},
	&marketCmd{},
	&topicCmd{},
}

// newMarket opens a fresh default catalog. A non-zero seed fixes the random
// source driving the price walk, for reproducible sessions.
func newMarket(seed int64) (*papertrader.Market, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return papertrader.NewMarketWithRand(rand.New(rand.NewSource(seed)), papertrader.DefaultListings...)
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
