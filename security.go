package papertrader

import "fmt"

// Security identifies a tradable stock in the market catalog.
type Security struct {
	symbol string // short unique uppercase ticker, e.g. "AAPL"
	name   string // display name, e.g. "Apple"
}

// NewSecurity creates a security after validating its symbol.
func NewSecurity(symbol, name string) (Security, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return Security{}, err
	}
	return Security{symbol: symbol, name: name}, nil
}

// Symbol returns the unique ticker symbol of the security.
func (s Security) Symbol() string { return s.symbol }

// Name returns the display name of the security.
func (s Security) Name() string { return s.name }

// ValidateSymbol checks that a symbol is 1 to 6 uppercase ASCII letters.
func ValidateSymbol(symbol string) error {
	if len(symbol) < 1 || len(symbol) > 6 {
		return fmt.Errorf("symbol %q must be 1 to 6 characters long", symbol)
	}
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("symbol %q must contain only uppercase letters", symbol)
		}
	}
	return nil
}
