package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tradesim/tradesim_backend/internal/core/domain"
)

// AccountReaderSvc defines the pure query operations on the account. Queries never
// mutate state and return copies, so callers cannot reach into the live account.
type AccountReaderSvc interface {
	// Summary computes the derived portfolio valuation at current oracle prices.
	Summary(ctx context.Context) domain.PortfolioSummary

	// Holdings returns the current positions sorted by symbol, enriched with live
	// prices and unrealized P/L.
	Holdings(ctx context.Context) []domain.Position

	// Transactions returns the transaction ledger in append (chronological) order.
	Transactions(ctx context.Context) []domain.Transaction

	// Snapshot returns a copy of the raw account state.
	Snapshot(ctx context.Context) domain.Account
}

// AccountWriterSvc defines the mutating operations on the account. Every successful
// call appends exactly one transaction; failed calls mutate nothing.
type AccountWriterSvc interface {
	// Onboard validates the user name, records it and deposits the initial funding.
	// This is the only operation that sets the account's user name.
	Onboard(ctx context.Context, name string, initialFunding decimal.Decimal) (*domain.Transaction, error)

	// Deposit adds cash to the balance and raises the funded-capital baseline.
	Deposit(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error)

	// Withdraw removes cash from the balance; the funded-capital baseline is untouched.
	Withdraw(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error)

	// Buy purchases quantity shares of symbol at the current oracle price.
	Buy(ctx context.Context, symbol string, quantity int64) (*domain.Transaction, error)

	// Sell liquidates quantity shares of symbol at the current oracle price.
	Sell(ctx context.Context, symbol string, quantity int64) (*domain.Transaction, error)

	// Reset discards all state and returns the account to the unonboarded zero state.
	Reset(ctx context.Context)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
