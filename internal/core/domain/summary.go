package domain

import "github.com/shopspring/decimal"

// PortfolioSummary is the derived valuation of an account at current oracle prices.
type PortfolioSummary struct {
	Balance       decimal.Decimal `json:"balance"`
	MarketValue   decimal.Decimal `json:"marketValue"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	TotalPL       decimal.Decimal `json:"totalPL"`
	PLPercent     decimal.Decimal `json:"plPercent"`
	FundedCapital decimal.Decimal `json:"fundedCapital"`
}

// Position is a holding enriched with live pricing for display: current price,
// market value and unrealized P/L against the cost basis.
type Position struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	MarketValue  decimal.Decimal `json:"marketValue"`
	UnrealizedPL decimal.Decimal `json:"unrealizedPL"`
}
