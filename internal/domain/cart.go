package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is the canonical rental line item. The same shape travels from
// the cart slot into the checkout snapshot, whichever entry path produced it.
type CartLine struct {
	ID            string           `json:"id"`
	ItemID        string           `json:"item_id"`
	Title         string           `json:"title"`
	Brand         string           `json:"brand,omitempty"`
	DailyRate     decimal.Decimal  `json:"daily_rate"`
	WeeklyRate    *decimal.Decimal `json:"weekly_rate,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Quantity      int              `json:"quantity"`
	RentalDays    int              `json:"rental_days"`
	SizeSelected  string           `json:"size_selected,omitempty"`
	ColorSelected string           `json:"color_selected,omitempty"`
	DepositAmount decimal.Decimal  `json:"deposit_amount"`
	AddedAt       time.Time        `json:"added_at"`
}

// CheckoutSnapshot is the cart state captured when a checkout begins; the
// checkout view reads it independently of further cart mutation.
type CheckoutSnapshot struct {
	Lines      []CartLine `json:"lines"`
	CapturedAt time.Time  `json:"captured_at"`
}

// WishEntry is a saved-for-later pointer to a catalog item.
type WishEntry struct {
	ItemID  string    `json:"item_id"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}
