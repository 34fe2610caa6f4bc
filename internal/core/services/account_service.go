package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tradesim/tradesim_backend/internal/apperrors"
	"github.com/tradesim/tradesim_backend/internal/core/domain"
	"github.com/tradesim/tradesim_backend/internal/core/ports"
	portssvc "github.com/tradesim/tradesim_backend/internal/core/ports/services"
	"github.com/tradesim/tradesim_backend/internal/middleware"
)

// accountService owns the single brokerage account and enforces its invariants:
// non-negative balance, no zero-quantity holdings, funded capital equal to the sum
// of all deposits, and exactly one ledger entry per successful mutating call.
//
// The service assumes one call at a time and holds no lock. Concurrent callers
// (e.g. HTTP handlers) must serialize calls externally.
type accountService struct {
	account *domain.Account
	oracle  ports.PriceOracle
	clock   ports.Clock
}

// NewAccountService creates an account service around a fresh, unonboarded account.
func NewAccountService(oracle ports.PriceOracle, clock ports.Clock) portssvc.AccountSvcFacade {
	return &accountService{
		account: domain.NewAccount(),
		oracle:  oracle,
		clock:   clock,
	}
}

// Ensure accountService implements the facade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// Onboard validates the name and initial funding, records the user name and performs
// the initial deposit. Nothing is mutated on failure, so a failed onboarding leaves
// the account unonboarded. This is the only path that sets the user name.
func (s *accountService) Onboard(ctx context.Context, name string, initialFunding decimal.Decimal) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrInvalidName
	}
	if initialFunding.Sign() <= 0 {
		return nil, fmt.Errorf("initial funding must be greater than zero: %w", apperrors.ErrInvalidAmount)
	}

	s.account.UserName = name
	logger.Info("User onboarded", slog.String("user_name", name))

	return s.Deposit(ctx, initialFunding)
}

// Deposit credits the balance and raises the funded-capital baseline. Every deposit
// counts toward the baseline, not just the first: P/L is measured against gross
// contributed capital.
func (s *accountService) Deposit(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrInvalidAmount)
	}

	s.account.Balance = s.account.Balance.Add(amount)
	s.account.FundedCapital = s.account.FundedCapital.Add(amount)
	txn := s.appendTransaction(domain.Deposit, domain.NonTradeSymbol, 0, decimal.Zero, amount)

	logger.Info("Deposit completed", slog.String("amount", amount.String()))
	return txn, nil
}

// Withdraw debits the balance. The funded-capital baseline is not reduced:
// withdrawals lower cash, not the capital P/L is measured against.
func (s *accountService) Withdraw(ctx context.Context, amount decimal.Decimal) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	if amount.GreaterThan(s.account.Balance) {
		return nil, fmt.Errorf("insufficient balance for withdrawal: %w", apperrors.ErrInsufficientFunds)
	}

	s.account.Balance = s.account.Balance.Sub(amount)
	txn := s.appendTransaction(domain.Withdrawal, domain.NonTradeSymbol, 0, decimal.Zero, amount.Neg())

	logger.Info("Withdrawal completed", slog.String("amount", amount.String()))
	return txn, nil
}

// Buy purchases quantity shares of symbol at the current oracle price, debiting the
// balance by the full cost and recomputing the holding's weighted average price.
func (s *accountService) Buy(ctx context.Context, symbol string, quantity int64) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	symbol = normalizeSymbol(symbol)

	if quantity <= 0 {
		return nil, fmt.Errorf("purchase quantity must be greater than zero: %w", apperrors.ErrInvalidQuantity)
	}

	price := s.oracle.Price(symbol)
	if price.Sign() <= 0 {
		return nil, fmt.Errorf("no price available for %s: %w", symbol, apperrors.ErrUnknownSymbol)
	}

	totalCost := price.Mul(decimal.NewFromInt(quantity))
	if totalCost.GreaterThan(s.account.Balance) {
		return nil, fmt.Errorf("total cost %s exceeds available balance %s: %w",
			totalCost.StringFixed(2), s.account.Balance.StringFixed(2), apperrors.ErrInsufficientFunds)
	}

	s.account.Balance = s.account.Balance.Sub(totalCost)

	if held, ok := s.account.Holdings[symbol]; ok {
		s.account.Holdings[symbol] = domain.Holding{
			Quantity: held.Quantity + quantity,
			AvgPrice: held.AverageAfterBuy(quantity, price),
		}
	} else {
		s.account.Holdings[symbol] = domain.Holding{Quantity: quantity, AvgPrice: price}
	}

	txn := s.appendTransaction(domain.Buy, symbol, quantity, price, totalCost.Neg())

	logger.Info("Buy executed",
		slog.String("symbol", symbol),
		slog.Int64("quantity", quantity),
		slog.String("price", price.String()),
	)
	return txn, nil
}

// Sell liquidates quantity shares of symbol at the current oracle price. Proceeds use
// the live price, not the average cost, so realized gain/loss is implicit in the
// ledger rather than stored. A position sold down to zero is removed entirely; a
// partial sell leaves the average price untouched.
func (s *accountService) Sell(ctx context.Context, symbol string, quantity int64) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	symbol = normalizeSymbol(symbol)

	if quantity <= 0 {
		return nil, fmt.Errorf("sell quantity must be greater than zero: %w", apperrors.ErrInvalidQuantity)
	}

	held, ok := s.account.Holdings[symbol]
	if !ok {
		return nil, fmt.Errorf("you do not own any shares of %s: %w", symbol, apperrors.ErrNoSuchHolding)
	}
	if held.Quantity < quantity {
		return nil, fmt.Errorf("you only own %d shares of %s: %w", held.Quantity, symbol, apperrors.ErrInsufficientShares)
	}

	price := s.oracle.Price(symbol)
	proceeds := price.Mul(decimal.NewFromInt(quantity))
	s.account.Balance = s.account.Balance.Add(proceeds)

	remaining := held.Quantity - quantity
	if remaining == 0 {
		delete(s.account.Holdings, symbol)
	} else {
		s.account.Holdings[symbol] = domain.Holding{Quantity: remaining, AvgPrice: held.AvgPrice}
	}

	txn := s.appendTransaction(domain.Sell, symbol, quantity, price, proceeds)

	logger.Info("Sell executed",
		slog.String("symbol", symbol),
		slog.Int64("quantity", quantity),
		slog.String("price", price.String()),
	)
	return txn, nil
}

// Summary computes the derived portfolio valuation at current oracle prices. It is a
// pure query: calling it repeatedly without mutation yields identical results.
func (s *accountService) Summary(ctx context.Context) domain.PortfolioSummary {
	marketValue := decimal.Zero
	for symbol, held := range s.account.Holdings {
		marketValue = marketValue.Add(s.oracle.Price(symbol).Mul(decimal.NewFromInt(held.Quantity)))
	}

	totalValue := s.account.Balance.Add(marketValue)
	totalPL := totalValue.Sub(s.account.FundedCapital)

	plPercent := decimal.Zero
	if s.account.FundedCapital.Sign() > 0 {
		plPercent = totalPL.Div(s.account.FundedCapital).Mul(decimal.NewFromInt(100))
	}

	return domain.PortfolioSummary{
		Balance:       s.account.Balance,
		MarketValue:   marketValue,
		TotalValue:    totalValue,
		TotalPL:       totalPL,
		PLPercent:     plPercent,
		FundedCapital: s.account.FundedCapital,
	}
}

// Holdings returns the current positions sorted by symbol, each enriched with the
// live price, market value and unrealized P/L against its cost basis.
func (s *accountService) Holdings(ctx context.Context) []domain.Position {
	positions := make([]domain.Position, 0, len(s.account.Holdings))
	for symbol, held := range s.account.Holdings {
		price := s.oracle.Price(symbol)
		marketValue := price.Mul(decimal.NewFromInt(held.Quantity))
		positions = append(positions, domain.Position{
			Symbol:       symbol,
			Quantity:     held.Quantity,
			AvgPrice:     held.AvgPrice,
			CurrentPrice: price,
			MarketValue:  marketValue,
			UnrealizedPL: marketValue.Sub(held.CostBasis()),
		})
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Symbol < positions[j].Symbol })
	return positions
}

// Transactions returns a copy of the ledger in append order.
func (s *accountService) Transactions(ctx context.Context) []domain.Transaction {
	out := make([]domain.Transaction, len(s.account.Transactions))
	copy(out, s.account.Transactions)
	return out
}

// Snapshot returns a deep copy of the account state.
func (s *accountService) Snapshot(ctx context.Context) domain.Account {
	snap := *s.account
	snap.Holdings = make(map[string]domain.Holding, len(s.account.Holdings))
	for symbol, held := range s.account.Holdings {
		snap.Holdings[symbol] = held
	}
	snap.Transactions = make([]domain.Transaction, len(s.account.Transactions))
	copy(snap.Transactions, s.account.Transactions)
	return snap
}

// Reset discards all state and starts over with an empty, unonboarded account.
func (s *accountService) Reset(ctx context.Context) {
	middleware.GetLoggerFromCtx(ctx).Info("Account reset", slog.String("user_name", s.account.UserName))
	s.account = domain.NewAccount()
}

// appendTransaction stamps and appends a ledger entry. It must only be called after
// every validation for the operation has passed.
func (s *accountService) appendTransaction(kind domain.TransactionKind, symbol string, quantity int64, price, amount decimal.Decimal) *domain.Transaction {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     s.clock.Now(),
		Kind:          kind,
		Symbol:        symbol,
		Quantity:      quantity,
		Price:         price,
		Amount:        amount,
		Status:        domain.StatusCompleted,
	}
	s.account.Transactions = append(s.account.Transactions, txn)
	return &txn
}

// normalizeSymbol canonicalizes a ticker so holdings keys and oracle lookups agree.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
