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

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	user    string
	balance float64
	seed    int64
	journal string
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "run an interactive trading session" }
func (*tradeCmd) Usage() string {
	return `pt trade [-user <name>] [-balance <amount>] [-seed <n>] [-journal <file>]

  Runs the menu-driven trading session against a fresh market catalog.
  Nothing persists across runs; -journal only appends an export log of the
  executed trades.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "khushbu", "Trader name for the session.")
	f.Float64Var(&c.balance, "balance", 10000.0, "Opening cash balance in USD.")
	f.Int64Var(&c.seed, "seed", 0, "Random seed for the price walk. 0 picks one from the clock.")
	f.StringVar(&c.journal, "journal", "", "Append executed trades to this file as JSONL.")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, err := newMarket(c.seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening market: %v\n", err)
		return subcommands.ExitFailure
	}
	user, err := papertrader.NewUser(c.user, papertrader.USD(c.balance))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		return subcommands.ExitUsageError
	}
	eng := papertrader.NewTradeEngine(market)

	if err := runSession(os.Stdin, os.Stdout, eng, user); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	trades := eng.Trades()
	if c.journal != "" && len(trades) > 0 {
		if err := appendTrades(c.journal, trades); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing journal %q: %v\n", c.journal, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Appended %d trades to %s\n", len(trades), c.journal)
	}
	if len(trades) > 0 {
		printMarkdown(renderer.Trades(trades))
	}
	return subcommands.ExitSuccess
}

// appendTrades appends trades to a JSONL file, creating it if needed.
func appendTrades(filename string, trades []papertrader.Trade) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return papertrader.EncodeTrades(f, trades)
}
