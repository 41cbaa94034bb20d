package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		daily    string
		weekly   *decimal.Decimal
		days     int
		quantity int
		want     string
	}{
		{"short rental, no weekly rate", "50", nil, 5, 1, "250"},
		{"long rental, no weekly rate", "50", nil, 10, 1, "500"},
		{"blended weeks plus remainder", "100", decPtr("600"), 10, 2, "1800"},
		{"exactly one week", "100", decPtr("600"), 7, 1, "600"},
		{"two whole weeks", "100", decPtr("600"), 14, 1, "1200"},
		{"six days stays daily even with weekly rate", "100", decPtr("600"), 6, 1, "600"},
		{"fractional daily rate", "12.5", nil, 3, 2, "75"},
		{"single day", "80", decPtr("400"), 1, 1, "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(dec(tt.daily), tt.weekly, tt.days, tt.quantity)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCartTotals(t *testing.T) {
	lines := []domain.CartLine{
		{DailyRate: dec("100"), RentalDays: 4, Quantity: 1, DepositAmount: dec("500")},
		{DailyRate: dec("150"), RentalDays: 4, Quantity: 1, DepositAmount: dec("300")},
	}

	totals := CartTotals(lines, dec("0.08"))
	assert.True(t, totals.Subtotal.Equal(dec("1000")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(dec("80")), "tax %s", totals.Tax)
	assert.True(t, totals.Deposit.IsZero(), "no deposit at cart view")
	assert.True(t, totals.Total.Equal(dec("1080")), "total %s", totals.Total)
}

func TestOrderTotals_IncludesDeposit(t *testing.T) {
	lines := []domain.CartLine{
		{DailyRate: dec("100"), WeeklyRate: decPtr("600"), RentalDays: 10, Quantity: 2, DepositAmount: dec("250")},
	}

	totals := OrderTotals(lines, dec("0.18"))
	assert.True(t, totals.Subtotal.Equal(dec("1800")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(dec("324")), "tax %s", totals.Tax)
	assert.True(t, totals.Deposit.Equal(dec("500")), "deposit %s", totals.Deposit)
	assert.True(t, totals.Total.Equal(dec("2624")), "total %s", totals.Total)
}

func TestCartTotals_Empty(t *testing.T) {
	totals := CartTotals(nil, dec("0.18"))
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestLineTotal_FullPrecision(t *testing.T) {
	// No rounding happens mid-formula.
	got := LineTotal(dec("33.33"), nil, 3, 1)
	assert.Equal(t, "99.99", got.String())
}
