package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutStatus string

const (
	CheckoutStatusIdle       CheckoutStatus = "IDLE"
	CheckoutStatusSubmitting CheckoutStatus = "SUBMITTING"
	CheckoutStatusSucceeded  CheckoutStatus = "SUCCEEDED"
	CheckoutStatusFailed     CheckoutStatus = "FAILED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusSucceeded || s == CheckoutStatusFailed
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether a checkout session may move from one
// status to another. Both terminal outcomes are reachable from SUBMITTING,
// and a FAILED session may be resubmitted.
func CanTransitionTo(from, to CheckoutStatus) bool {
	switch from {
	case CheckoutStatusIdle:
		return to == CheckoutStatusSubmitting
	case CheckoutStatusSubmitting:
		return to == CheckoutStatusSucceeded || to == CheckoutStatusFailed
	case CheckoutStatusFailed:
		return to == CheckoutStatusSubmitting
	default:
		return false
	}
}

// CheckoutResult reports the outcome of a payment submission.
type CheckoutResult struct {
	OrderID     string          `json:"order_id"`
	PaymentID   string          `json:"payment_id,omitempty"`
	Status      CheckoutStatus  `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Rental is a confirmed booking, one row per checkout line.
type Rental struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ItemID        string          `json:"item_id"`
	Title         string          `json:"title"`
	Quantity      int             `json:"quantity"`
	RentalDays    int             `json:"rental_days"`
	SizeSelected  string          `json:"size_selected,omitempty"`
	ColorSelected string          `json:"color_selected,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
