package market

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tradesim/tradesim_backend/internal/core/ports"
)

// DefaultPriceTable is the built-in mock market used when no override is configured.
func DefaultPriceTable() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"COALINDIA": decimal.NewFromFloat(450.00),
		"MARICO":    decimal.NewFromFloat(670.00),
		"ICICIAMC":  decimal.NewFromFloat(1200.00),
	}
}

// StaticOracle is a ports.PriceOracle backed by a fixed symbol → price table.
// It simulates real-time market data: lookups are case-insensitive and any symbol
// outside the table prices at zero, the "no price" sentinel.
type StaticOracle struct {
	prices map[string]decimal.Decimal
}

// NewStaticOracle builds an oracle from the given table. Keys are canonicalized to
// upper case; nil or empty tables fall back to the default fixture.
func NewStaticOracle(table map[string]decimal.Decimal) *StaticOracle {
	if len(table) == 0 {
		table = DefaultPriceTable()
	}
	prices := make(map[string]decimal.Decimal, len(table))
	for symbol, price := range table {
		prices[strings.ToUpper(strings.TrimSpace(symbol))] = price
	}
	return &StaticOracle{prices: prices}
}

// ParsePriceTable parses a "SYM:PRICE,SYM:PRICE" config string into a price table.
func ParsePriceTable(entries string) (map[string]decimal.Decimal, error) {
	entries = strings.TrimSpace(entries)
	if entries == "" {
		return nil, nil
	}
	table := make(map[string]decimal.Decimal)
	for _, entry := range strings.Split(entries, ",") {
		symbol, priceStr, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("invalid price table entry %q, expected SYMBOL:PRICE", entry)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(priceStr))
		if err != nil {
			return nil, fmt.Errorf("invalid price for %q: %w", strings.TrimSpace(symbol), err)
		}
		table[strings.ToUpper(strings.TrimSpace(symbol))] = price
	}
	return table, nil
}

// Price returns the current unit price for symbol, or zero when unknown.
func (o *StaticOracle) Price(symbol string) decimal.Decimal {
	price, ok := o.prices[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return decimal.Zero
	}
	return price
}

// Symbols lists the tradable universe in sorted order.
func (o *StaticOracle) Symbols() []string {
	symbols := make([]string, 0, len(o.prices))
	for symbol := range o.prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

var _ ports.PriceOracle = (*StaticOracle)(nil)

// SystemClock is the real clock used outside tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

var _ ports.Clock = SystemClock{}
