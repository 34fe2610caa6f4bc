package ports

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceOracle supplies the current unit price for a symbol. Lookups are pure and
// instantaneous; there is no I/O behind this interface in the simulator.
type PriceOracle interface {
	// Price returns the current unit price for symbol, matching case-insensitively.
	// It returns decimal zero for any symbol it has no price for.
	Price(symbol string) decimal.Decimal

	// Symbols lists the tradable universe in sorted order.
	Symbols() []string
}

// Clock supplies timestamps for transaction stamping. It exists so services never
// call time.Now directly and tests can fix the clock.
type Clock interface {
	Now() time.Time
}
