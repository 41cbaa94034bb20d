// Package checkout assembles the canonical checkout line list from either
// the full cart or a single rent-now selection, and drives each session
// through a total state machine: every submission ends SUCCEEDED or FAILED.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/events"
	"github.com/sreerojavusa/Travelgear/internal/payment"
	"github.com/sreerojavusa/Travelgear/internal/pricing"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

// CartStore is the slice of the cart service checkout needs.
// Consumers define this interface, not the cart implementation.
type CartStore interface {
	Get(ctx context.Context, userID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, userID string) error
}

type Catalog interface {
	GetItem(ctx context.Context, id string) (*domain.Item, error)
}

type RentalRecorder interface {
	Save(ctx context.Context, rentals []domain.Rental) error
}

type PaymentGateway interface {
	Charge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error)
}

type Publisher interface {
	Publish(ctx context.Context, event events.RentalConfirmed) error
}

type Service struct {
	store    storage.SlotStore
	cart     CartStore
	catalog  Catalog
	gateway  PaymentGateway
	rentals  RentalRecorder
	events   Publisher
	taxRate  decimal.Decimal
	currency string
}

func NewService(
	store storage.SlotStore,
	cartStore CartStore,
	catalog Catalog,
	gateway PaymentGateway,
	rentals RentalRecorder,
	events Publisher,
	taxRate decimal.Decimal,
	currency string,
) *Service {
	return &Service{
		store:    store,
		cart:     cartStore,
		catalog:  catalog,
		gateway:  gateway,
		rentals:  rentals,
		events:   events,
		taxRate:  taxRate,
		currency: currency,
	}
}

func checkoutKey(userID string) string {
	return fmt.Sprintf("checkout:%s", userID)
}

const sessionSchemaVersion = 1

// session is the persisted checkout snapshot plus its state-machine status.
type session struct {
	Version    int                   `json:"version"`
	OrderID    string                `json:"order_id"`
	Status     domain.CheckoutStatus `json:"status"`
	Lines      []domain.CartLine     `json:"lines"`
	CapturedAt time.Time             `json:"captured_at"`
}

// View is what the checkout page renders: the captured lines and the order
// totals including tax and deposit.
type View struct {
	OrderID    string                `json:"order_id"`
	Status     domain.CheckoutStatus `json:"status"`
	Lines      []domain.CartLine     `json:"lines"`
	Totals     pricing.Totals        `json:"totals"`
	CapturedAt time.Time             `json:"captured_at"`
}

// RentNowRequest is the single-item fast path that bypasses the cart.
type RentNowRequest struct {
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	RentalDays    int    `json:"rental_days"`
	SizeSelected  string `json:"size_selected"`
	ColorSelected string `json:"color_selected"`
}

// BeginFromCart snapshots the full cart into the checkout slot so the
// checkout view reads it independently of further cart mutation.
func (s *Service) BeginFromCart(ctx context.Context, userID string) (*View, error) {
	lines, err := s.cart.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return s.begin(ctx, userID, lines)
}

// BeginRentNow builds a one-line snapshot straight from a catalog item.
// The resulting line has exactly the same shape as a cart line.
func (s *Service) BeginRentNow(ctx context.Context, userID string, req RentNowRequest) (*View, error) {
	line, err := s.buildLine(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.begin(ctx, userID, []domain.CartLine{*line})
}

func (s *Service) begin(ctx context.Context, userID string, lines []domain.CartLine) (*View, error) {
	sess := session{
		Version:    sessionSchemaVersion,
		OrderID:    uuid.New().String(),
		Status:     domain.CheckoutStatusIdle,
		Lines:      lines,
		CapturedAt: time.Now(),
	}
	if err := s.persistSession(ctx, userID, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Get returns the active checkout session with totals, or
// ErrNoActiveCheckout when none exists.
func (s *Service) Get(ctx context.Context, userID string) (*View, error) {
	sess, err := s.loadSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(*sess), nil
}

func (s *Service) view(sess session) *View {
	return &View{
		OrderID:    sess.OrderID,
		Status:     sess.Status,
		Lines:      sess.Lines,
		Totals:     pricing.OrderTotals(sess.Lines, s.taxRate),
		CapturedAt: sess.CapturedAt,
	}
}

func (s *Service) loadSession(ctx context.Context, userID string) (*session, error) {
	data, err := s.store.Get(ctx, checkoutKey(userID))
	if errors.Is(err, storage.ErrSlotNotFound) {
		return nil, ErrNoActiveCheckout
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout slot: %w", err)
	}

	var sess session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Version != sessionSchemaVersion {
		log.Printf("discarding unreadable checkout session for user %s", userID)
		return nil, ErrNoActiveCheckout
	}
	return &sess, nil
}

func (s *Service) persistSession(ctx context.Context, userID string, sess session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.store.Set(ctx, checkoutKey(userID), data); err != nil {
		return fmt.Errorf("failed to persist checkout session: %w", err)
	}
	return nil
}

func (s *Service) buildLine(ctx context.Context, req RentNowRequest) (*domain.CartLine, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.RentalDays == 0 {
		req.RentalDays = 7
	}
	if req.Quantity < 1 || req.RentalDays < 1 {
		return nil, ErrInvalidSelection
	}

	item, err := s.catalog.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", req.ItemID, err)
	}
	if !item.Availability {
		return nil, ErrInvalidSelection
	}
	if len(item.Sizes) > 0 && (req.SizeSelected == "" || !item.HasSize(req.SizeSelected)) {
		return nil, ErrInvalidSelection
	}
	if len(item.Colors) > 0 && (req.ColorSelected == "" || !item.HasColor(req.ColorSelected)) {
		return nil, ErrInvalidSelection
	}

	return &domain.CartLine{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		Title:         item.Title,
		Brand:         item.Brand,
		DailyRate:     item.DailyRate,
		WeeklyRate:    item.WeeklyRate,
		ImageURL:      item.PrimaryImage(),
		Quantity:      req.Quantity,
		RentalDays:    req.RentalDays,
		SizeSelected:  req.SizeSelected,
		ColorSelected: req.ColorSelected,
		DepositAmount: item.DepositAmount,
		AddedAt:       time.Now(),
	}, nil
}
