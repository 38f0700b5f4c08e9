// Package papertrader implements a single-user, in-memory stock trading
// simulator.
//
// A Market holds a fixed catalog of securities whose prices follow a random
// walk, one Tick at a time. A User owns a cash Account and a Portfolio of
// share holdings. The TradeEngine executes buy and sell orders against the
// three of them as all-or-nothing operations, and records every executed
// trade in a session Journal.
//
// All monetary amounts and share quantities are exact decimals; business
// failures (unknown symbol, insufficient funds, insufficient holdings) are
// reported as wrapped sentinel errors, never panics.
package papertrader
