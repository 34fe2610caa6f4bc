package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tradesim/tradesim_backend/internal/core/domain"
)

// OnboardRequest defines the data needed to onboard the account user.
// "notblank" rejects names that are empty after trimming whitespace.
type OnboardRequest struct {
	Name           string          `json:"name" binding:"required,notblank"`
	InitialFunding decimal.Decimal `json:"initialFunding" binding:"required"`
}

// FundsRequest defines the data for a deposit or withdrawal.
type FundsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TradeRequest defines the data for a buy or sell order.
type TradeRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
}

// TransactionResponse defines the data returned for a ledger entry.
// Timestamp uses the fixed "YYYY-MM-DD HH:MM:SS" wire format.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Timestamp     string          `json:"timestamp"`
	Kind          string          `json:"kind"`
	Symbol        string          `json:"symbol"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Timestamp:     txn.Timestamp.Format(domain.TimestampLayout),
		Kind:          string(txn.Kind),
		Symbol:        txn.Symbol,
		Quantity:      txn.Quantity,
		Price:         txn.Price,
		Amount:        txn.Amount,
		Status:        string(txn.Status),
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// SummaryResponse defines the data returned for the portfolio valuation query.
type SummaryResponse struct {
	Balance       decimal.Decimal `json:"balance"`
	MarketValue   decimal.Decimal `json:"marketValue"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	TotalPL       decimal.Decimal `json:"totalPL"`
	PLPercent     decimal.Decimal `json:"plPercent"`
	FundedCapital decimal.Decimal `json:"fundedCapital"`
}

// ToSummaryResponse converts a domain.PortfolioSummary to SummaryResponse DTO
func ToSummaryResponse(s domain.PortfolioSummary) SummaryResponse {
	return SummaryResponse{
		Balance:       s.Balance,
		MarketValue:   s.MarketValue,
		TotalValue:    s.TotalValue,
		TotalPL:       s.TotalPL,
		PLPercent:     s.PLPercent,
		FundedCapital: s.FundedCapital,
	}
}

// PositionResponse defines the data returned for one holding row.
type PositionResponse struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	MarketValue  decimal.Decimal `json:"marketValue"`
	UnrealizedPL decimal.Decimal `json:"unrealizedPL"`
}

// ToListPositionResponse converts domain positions to DTOs.
func ToListPositionResponse(positions []domain.Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = PositionResponse{
			Symbol:       p.Symbol,
			Quantity:     p.Quantity,
			AvgPrice:     p.AvgPrice,
			CurrentPrice: p.CurrentPrice,
			MarketValue:  p.MarketValue,
			UnrealizedPL: p.UnrealizedPL,
		}
	}
	return res
}

// AccountResponse defines the raw account state returned by the snapshot query.
type AccountResponse struct {
	UserName      string          `json:"userName"`
	Onboarded     bool            `json:"onboarded"`
	Balance       decimal.Decimal `json:"balance"`
	FundedCapital decimal.Decimal `json:"fundedCapital"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		UserName:      acc.UserName,
		Onboarded:     acc.Onboarded(),
		Balance:       acc.Balance,
		FundedCapital: acc.FundedCapital,
	}
}

// QuoteResponse defines the data returned for a single price lookup.
type QuoteResponse struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}
