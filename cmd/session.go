package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kmehta/papertrader"
)

// session is one interactive trading session: a menu loop reading commands
// from in and reporting to out.
type session struct {
	in   *bufio.Scanner
	out  io.Writer
	eng  *papertrader.TradeEngine
	user *papertrader.User
}

// runSession runs the menu loop until the user exits or in is exhausted.
func runSession(in io.Reader, out io.Writer, eng *papertrader.TradeEngine, user *papertrader.User) error {
	s := &session{in: bufio.NewScanner(in), out: out, eng: eng, user: user}
	for {
		fmt.Fprint(s.out, "\n=== Stock Trading Platform ===\n")
		fmt.Fprint(s.out, "1. View Market\n2. Buy Stock\n3. Sell Stock\n4. View Portfolio\n5. Exit\n")
		fmt.Fprint(s.out, "Choose an option: ")

		choice, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		switch choice {
		case "1":
			s.viewMarket()
		case "2":
			s.buy()
		case "3":
			s.sell()
		case "4":
			s.viewPortfolio()
		case "5":
			fmt.Fprintln(s.out, "Exiting... Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option!")
		}
	}
}

// readLine reads one trimmed input line; ok is false when input is exhausted.
func (s *session) readLine() (line string, ok bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readSymbol prompts for a stock symbol, normalized to uppercase.
func (s *session) readSymbol() (symbol string, ok bool) {
	fmt.Fprint(s.out, "Enter stock symbol: ")
	line, ok := s.readLine()
	return strings.ToUpper(line), ok
}

// readQuantity prompts for a positive whole number of shares.
func (s *session) readQuantity(prompt string) (papertrader.Quantity, bool) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return papertrader.Q(0), false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		fmt.Fprintln(s.out, "Invalid quantity!")
		return papertrader.Q(0), false
	}
	return papertrader.Q(n), true
}

// viewMarket applies one price update and lists the refreshed catalog.
func (s *session) viewMarket() {
	s.eng.TickMarket()
	fmt.Fprint(s.out, "\n--- Market Data ---\n")
	for _, q := range s.eng.MarketReport().Quotes {
		fmt.Fprintf(s.out, "%s (%s): %s\n", q.Security.Name(), q.Security.Symbol(), q.Price)
	}
}

func (s *session) buy() {
	symbol, ok := s.readSymbol()
	if !ok {
		return
	}
	qty, ok := s.readQuantity("Enter quantity to buy: ")
	if !ok {
		return
	}
	_, err := s.eng.ExecuteBuy(s.user, symbol, qty)
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "Stock bought successfully!")
	case errors.Is(err, papertrader.ErrInsufficientFunds):
		fmt.Fprintln(s.out, "Insufficient balance!")
	case errors.Is(err, papertrader.ErrStockNotFound):
		fmt.Fprintln(s.out, "Stock not found.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *session) sell() {
	symbol, ok := s.readSymbol()
	if !ok {
		return
	}
	qty, ok := s.readQuantity("Enter quantity to sell: ")
	if !ok {
		return
	}
	_, err := s.eng.ExecuteSell(s.user, symbol, qty)
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "Stock sold successfully!")
	case errors.Is(err, papertrader.ErrInsufficientHoldings):
		fmt.Fprintln(s.out, "You don't own enough of that stock.")
	case errors.Is(err, papertrader.ErrStockNotFound):
		fmt.Fprintln(s.out, "Stock not found.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *session) viewPortfolio() {
	report, err := s.eng.HoldingReport(s.user)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, "\n--- Your Portfolio ---\n")
	fmt.Fprintf(s.out, "Balance: %s\n", report.Cash)
	for _, row := range report.Rows {
		fmt.Fprintf(s.out, "%s - %s shares (%s each)\n", row.Symbol, row.Quantity, row.Price)
	}
}
