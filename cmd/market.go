package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kmehta/papertrader"
	"github.com/kmehta/papertrader/renderer"
)

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct {
	ticks int
	seed  int64
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "simulate market updates and show the quotes" }
func (*marketCmd) Usage() string {
	return `pt market [-n <ticks>] [-seed <n>]

  Seeds a fresh market catalog, applies n simulated price updates and prints
  the resulting quotes.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.ticks, "n", 1, "Number of simulated price updates to apply.")
	f.Int64Var(&c.seed, "seed", 0, "Random seed for the price walk. 0 picks one from the clock.")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticks < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n cannot be negative.")
		return subcommands.ExitUsageError
	}
	market, err := newMarket(c.seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening market: %v\n", err)
		return subcommands.ExitFailure
	}
	eng := papertrader.NewTradeEngine(market)
	for i := 0; i < c.ticks; i++ {
		eng.TickMarket()
	}
	printMarkdown(renderer.Market(eng.MarketReport()))
	return subcommands.ExitSuccess
}
