package domain

import (
	"github.com/shopspring/decimal"
)

// Holding is the current position in one symbol. Quantity is always positive:
// a position that reaches zero is deleted from the account, never kept at zero.
// AvgPrice is the weighted average cost over all buy lots; sells never change it.
type Holding struct {
	Quantity int64           `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avgPrice"`
}

// AverageAfterBuy returns the cost basis per unit after buying qty more shares at
// price: (oldAvg*oldQty + price*qty) / (oldQty + qty).
func (h Holding) AverageAfterBuy(qty int64, price decimal.Decimal) decimal.Decimal {
	oldQty := decimal.NewFromInt(h.Quantity)
	newQty := decimal.NewFromInt(qty)
	totalCost := h.AvgPrice.Mul(oldQty).Add(price.Mul(newQty))
	return totalCost.Div(oldQty.Add(newQty))
}

// CostBasis is AvgPrice * Quantity, the total amount invested in the position.
func (h Holding) CostBasis() decimal.Decimal {
	return h.AvgPrice.Mul(decimal.NewFromInt(h.Quantity))
}

// Account is the single-user brokerage account. The zero value is the unonboarded
// state: empty user name, zero balance, no holdings, no transactions.
//
// FundedCapital accumulates gross deposits and is never reduced by withdrawals; it
// is the baseline against which total P/L is measured.
type Account struct {
	UserName      string             `json:"userName"`
	Balance       decimal.Decimal    `json:"balance"`
	FundedCapital decimal.Decimal    `json:"fundedCapital"`
	Holdings      map[string]Holding `json:"holdings"`
	Transactions  []Transaction      `json:"transactions"`
}

// NewAccount returns an empty, unonboarded account.
func NewAccount() *Account {
	return &Account{
		Balance:       decimal.Zero,
		FundedCapital: decimal.Zero,
		Holdings:      make(map[string]Holding),
	}
}

// Onboarded reports whether the account has completed onboarding.
func (a *Account) Onboarded() bool {
	return a.UserName != ""
}
