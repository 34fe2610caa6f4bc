package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tradesim/tradesim_backend/internal/core/domain"
)

func TestHolding_AverageAfterBuy(t *testing.T) {
	tests := []struct {
		name    string
		holding domain.Holding
		qty     int64
		price   decimal.Decimal
		want    decimal.Decimal
	}{
		{
			name:    "same price keeps average",
			holding: domain.Holding{Quantity: 2, AvgPrice: decimal.NewFromInt(450)},
			qty:     3,
			price:   decimal.NewFromInt(450),
			want:    decimal.NewFromInt(450),
		},
		{
			name:    "weighted average over two lots",
			holding: domain.Holding{Quantity: 1, AvgPrice: decimal.NewFromInt(100)},
			qty:     3,
			price:   decimal.NewFromInt(200),
			want:    decimal.NewFromInt(175), // (100*1 + 200*3) / 4
		},
		{
			name:    "fractional average is exact",
			holding: domain.Holding{Quantity: 1, AvgPrice: decimal.NewFromInt(100)},
			qty:     2,
			price:   decimal.NewFromInt(200),
			want:    decimal.RequireFromString("166.6666666666666667"), // (100 + 400) / 3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.holding.AverageAfterBuy(tt.qty, tt.price)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestHolding_CostBasis(t *testing.T) {
	h := domain.Holding{Quantity: 3, AvgPrice: decimal.NewFromFloat(670.50)}
	assert.True(t, decimal.NewFromFloat(2011.50).Equal(h.CostBasis()))
}

func TestAccount_ZeroValueIsUnonboarded(t *testing.T) {
	acc := domain.NewAccount()
	assert.False(t, acc.Onboarded())
	assert.True(t, acc.Balance.IsZero())
	assert.True(t, acc.FundedCapital.IsZero())
	assert.Empty(t, acc.Holdings)
	assert.Empty(t, acc.Transactions)

	acc.UserName = "John Doe"
	assert.True(t, acc.Onboarded())
}
