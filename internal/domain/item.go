package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is a catalog entry as the rental flow sees it: immutable, owned by
// the catalog data source.
type Item struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	CategoryID    string           `json:"category_id"`
	Brand         string           `json:"brand,omitempty"`
	Condition     string           `json:"condition,omitempty"`
	DailyRate     decimal.Decimal  `json:"daily_rate"`
	WeeklyRate    *decimal.Decimal `json:"weekly_rate,omitempty"`
	DepositAmount decimal.Decimal  `json:"deposit_amount"`
	Sizes         []string         `json:"sizes,omitempty"`
	Colors        []string         `json:"colors,omitempty"`
	ImageURLs     []string         `json:"image_urls,omitempty"`
	Availability  bool             `json:"availability"`
	StockQuantity int              `json:"stock_quantity"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// HasSize reports whether s is one of the item's declared sizes.
func (i *Item) HasSize(s string) bool {
	for _, v := range i.Sizes {
		if v == s {
			return true
		}
	}
	return false
}

// HasColor reports whether c is one of the item's declared colors.
func (i *Item) HasColor(c string) bool {
	for _, v := range i.Colors {
		if v == c {
			return true
		}
	}
	return false
}

// PrimaryImage returns the first image URL, or empty when the item has none.
func (i *Item) PrimaryImage() string {
	if len(i.ImageURLs) == 0 {
		return ""
	}
	return i.ImageURLs[0]
}
