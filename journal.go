package papertrader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// TradeSide is a typed string identifying the direction of a trade.
type TradeSide string

const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// Trade records one executed buy or sell order.
type Trade struct {
	ID       string    `json:"id"`
	Side     TradeSide `json:"side"`
	Time     time.Time `json:"time"`
	Symbol   string    `json:"symbol"`
	Quantity Quantity  `json:"quantity"`
	Price    Money     `json:"price"`  // unit price observed at execution
	Amount   Money     `json:"amount"` // Price * Quantity, debited or credited
}

func newTrade(side TradeSide, symbol string, qty Quantity, price Money) Trade {
	return Trade{
		ID:       uuid.NewString(),
		Side:     side,
		Time:     time.Now(),
		Symbol:   symbol,
		Quantity: qty,
		Price:    price,
		Amount:   price.Mul(qty),
	}
}

// Journal is the chronological record of a session's executed trades.
type Journal struct {
	trades []Trade
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{trades: make([]Trade, 0)}
}

func (j *Journal) append(t Trade) { j.trades = append(j.trades, t) }

// Trades returns a snapshot of the recorded trades in execution order.
func (j *Journal) Trades() []Trade {
	out := make([]Trade, len(j.trades))
	copy(out, j.trades)
	return out
}

// EncodeTrades writes trades to w as JSONL, one trade per line.
func EncodeTrades(w io.Writer, trades []Trade) error {
	enc := json.NewEncoder(w)
	for _, t := range trades {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("could not encode trade %s: %w", t.ID, err)
		}
	}
	return nil
}

// DecodeTrades reads a JSONL stream of trades from r.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var t Trade
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("could not decode trade line %q: %w", string(line), err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read trades: %w", err)
	}
	return trades, nil
}
