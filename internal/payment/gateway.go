// Package payment charges orders. The storefront ships with a simulated
// gateway; an HTTP gateway exists for pointing at a real charge endpoint.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

type ChargeStatus string

const (
	ChargeStatusSuccess ChargeStatus = "SUCCESS"
	ChargeStatusFailed  ChargeStatus = "FAILED"
)

// CardDetails is accepted and discarded; no gateway here stores or
// transmits real card data.
type CardDetails struct {
	Number     string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"name_on_card"`
}

type ChargeRequest struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
	Card     CardDetails
}

// ChargeResult reports the gateway outcome. Known refusals arrive in
// Status/Reason; transport-level problems arrive as errors from Charge.
type ChargeResult struct {
	PaymentID string
	Status    ChargeStatus
	Reason    string
}

type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
