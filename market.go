package papertrader

import (
	"fmt"
	"math/rand"
	"time"
)

// tickSpread is the width of the uniform price delta drawn on each tick:
// every tick moves a price by a random amount in [-10, +10).
const tickSpread = 20.0

// priceFloor is the lowest price a security can reach, in major units.
const priceFloor = 1.0

// Listing is a seed entry for the market catalog.
type Listing struct {
	Symbol string
	Name   string
	Price  Money
}

// DefaultListings is the catalog a fresh simulation starts with.
var DefaultListings = []Listing{
	{Symbol: "AAPL", Name: "Apple", Price: USD(150.0)},
	{Symbol: "GOOGL", Name: "Google", Price: USD(2800.0)},
	{Symbol: "TSLA", Name: "Tesla", Price: USD(700.0)},
	{Symbol: "AMZN", Name: "Amazon", Price: USD(3300.0)},
}

// Quote is the current price of a security.
type Quote struct {
	Security Security
	Price    Money
}

// Market holds the fixed catalog of tradable securities and their current
// prices. The symbol set never changes after creation; only prices move,
// through Tick.
type Market struct {
	quotes []*Quote          // catalog order, stable across calls
	index  map[string]*Quote // by symbol
	rng    *rand.Rand
}

// NewMarket creates a market from the given listings, with a time-seeded
// random source driving the price walk.
func NewMarket(listings ...Listing) (*Market, error) {
	return NewMarketWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), listings...)
}

// NewMarketWithRand is NewMarket with an injected random source, for
// deterministic simulations.
func NewMarketWithRand(rng *rand.Rand, listings ...Listing) (*Market, error) {
	if len(listings) == 0 {
		return nil, fmt.Errorf("market catalog cannot be empty")
	}
	m := &Market{
		quotes: make([]*Quote, 0, len(listings)),
		index:  make(map[string]*Quote, len(listings)),
		rng:    rng,
	}
	for _, l := range listings {
		sec, err := NewSecurity(l.Symbol, l.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid listing: %w", err)
		}
		if _, ok := m.index[l.Symbol]; ok {
			return nil, fmt.Errorf("duplicate listing for symbol %q", l.Symbol)
		}
		if !l.Price.IsPositive() {
			return nil, fmt.Errorf("listing %s must have a positive price, got %s", l.Symbol, l.Price)
		}
		q := &Quote{Security: sec, Price: l.Price}
		m.quotes = append(m.quotes, q)
		m.index[l.Symbol] = q
	}
	return m, nil
}

// Tick applies one simulated market update: every price moves by an
// independent uniform delta in [-10, +10), clamped to the $1.00 floor.
func (m *Market) Tick() {
	for _, q := range m.quotes {
		delta := (m.rng.Float64() - 0.5) * tickSpread
		price := q.Price.Add(M(delta, q.Price.Currency()))
		if floor := M(priceFloor, q.Price.Currency()); price.LessThan(floor) {
			price = floor
		}
		q.Price = price
	}
}

// Lookup returns the current quote for a symbol. The match is exact and
// case-sensitive; an absent symbol fails with ErrStockNotFound.
func (m *Market) Lookup(symbol string) (Quote, error) {
	q, ok := m.index[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("symbol %q: %w", symbol, ErrStockNotFound)
	}
	return *q, nil
}

// Securities returns a snapshot of all quotes in catalog order.
func (m *Market) Securities() []Quote {
	quotes := make([]Quote, 0, len(m.quotes))
	for _, q := range m.quotes {
		quotes = append(quotes, *q)
	}
	return quotes
}
