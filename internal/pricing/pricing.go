// Package pricing computes rental line and order totals. All math runs on
// decimals at full precision; callers round only for presentation.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

const daysPerWeek = 7

// LineTotal computes the price of renting an item for the given number of
// days at the given quantity. When a weekly rate exists and the rental spans
// at least a week, whole weeks bill at the weekly rate and remainder days at
// the daily rate.
func LineTotal(daily decimal.Decimal, weekly *decimal.Decimal, rentalDays, quantity int) decimal.Decimal {
	qty := decimal.NewFromInt(int64(quantity))
	if weekly != nil && rentalDays >= daysPerWeek {
		weeks := decimal.NewFromInt(int64(rentalDays / daysPerWeek))
		remainder := decimal.NewFromInt(int64(rentalDays % daysPerWeek))
		return weeks.Mul(*weekly).Add(remainder.Mul(daily)).Mul(qty)
	}
	days := decimal.NewFromInt(int64(rentalDays))
	return daily.Mul(days).Mul(qty)
}

// CartLineTotal is LineTotal applied to a cart line.
func CartLineTotal(line domain.CartLine) decimal.Decimal {
	return LineTotal(line.DailyRate, line.WeeklyRate, line.RentalDays, line.Quantity)
}

// Totals aggregates an order. Deposit is zero at cart view and populated
// only for checkout.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Deposit  decimal.Decimal `json:"deposit"`
	Total    decimal.Decimal `json:"total"`
}

// CartTotals sums line totals and applies the tax rate. Deposits are not
// collected at cart view.
func CartTotals(lines []domain.CartLine, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(CartLineTotal(line))
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Deposit:  decimal.Zero,
		Total:    subtotal.Add(tax),
	}
}

// OrderTotals is CartTotals plus the refundable deposit collected at
// checkout: sum of deposit_amount times quantity over all lines.
func OrderTotals(lines []domain.CartLine, taxRate decimal.Decimal) Totals {
	t := CartTotals(lines, taxRate)
	deposit := decimal.Zero
	for _, line := range lines {
		deposit = deposit.Add(line.DepositAmount.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	t.Deposit = deposit
	t.Total = t.Total.Add(deposit)
	return t
}
