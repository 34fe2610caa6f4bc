package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies what a ledger entry records.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
	Buy        TransactionKind = "BUY"
	Sell       TransactionKind = "SELL"
)

// TransactionStatus is the settlement state of a ledger entry. Every entry settles
// synchronously; there is no partial or pending state.
type TransactionStatus string

const StatusCompleted TransactionStatus = "COMPLETED"

// NonTradeSymbol is the placeholder symbol recorded on deposits and withdrawals.
const NonTradeSymbol = "-"

// TimestampLayout is the wire format presentation layers use for transaction timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Transaction is an immutable ledger entry. Amount is the signed cash delta:
// positive for inflows (deposits, sells), negative for outflows (withdrawals, buys).
// Symbol, Quantity and Price are placeholders ("-", 0, 0) for non-trade kinds.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // UUID
	Timestamp     time.Time         `json:"timestamp"`
	Kind          TransactionKind   `json:"kind"`
	Symbol        string            `json:"symbol"`
	Quantity      int64             `json:"quantity"`
	Price         decimal.Decimal   `json:"price"` // Unit price at execution time
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
}
