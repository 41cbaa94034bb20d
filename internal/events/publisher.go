// Package events announces confirmed rentals to the rest of the platform.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

// RentalConfirmed is emitted once per successful checkout.
type RentalConfirmed struct {
	OrderID     string            `json:"order_id"`
	UserID      string            `json:"user_id"`
	Lines       []domain.CartLine `json:"lines"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Currency    string            `json:"currency"`
	CompletedAt time.Time         `json:"completed_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event RentalConfirmed) error
	Close() error
}

// NopPublisher discards events; the default when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, RentalConfirmed) error { return nil }
func (NopPublisher) Close() error                                   { return nil }
