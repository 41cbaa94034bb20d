// Package cart is the exclusive owner of the durable cart collection.
// Every operation is a synchronous read-modify-write of the whole
// collection; the store has exactly one writer per user, so no
// optimistic-concurrency protocol is needed.
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sreerojavusa/Travelgear/internal/catalog"
	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

// CatalogSource resolves catalog items for validation at add time.
// Consumers define this interface, not the catalog implementation.
type CatalogSource interface {
	GetItem(ctx context.Context, id string) (*domain.Item, error)
}

type Service struct {
	store   storage.SlotStore
	catalog CatalogSource
}

func NewService(store storage.SlotStore, catalog CatalogSource) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
	}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// AddRequest carries a confirmed add-to-cart selection. Zero quantity or
// rental days take the storefront defaults.
type AddRequest struct {
	ItemID        string `json:"item_id"`
	Quantity      int    `json:"quantity"`
	RentalDays    int    `json:"rental_days"`
	SizeSelected  string `json:"size_selected"`
	ColorSelected string `json:"color_selected"`
}

const (
	defaultQuantity   = 1
	defaultRentalDays = 7
)

// Get returns the user's cart lines. A missing or unreadable slot is an
// empty cart.
func (s *Service) Get(ctx context.Context, userID string) ([]domain.CartLine, error) {
	return loadLines(ctx, s.store, cartKey(userID))
}

// Add validates the selection against the catalog item, builds a line with
// a fresh id and denormalized display fields, and persists it.
func (s *Service) Add(ctx context.Context, userID string, req AddRequest) (*domain.CartLine, error) {
	if req.Quantity == 0 {
		req.Quantity = defaultQuantity
	}
	if req.RentalDays == 0 {
		req.RentalDays = defaultRentalDays
	}
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if req.RentalDays < 1 {
		return nil, ErrInvalidRentalDays
	}

	item, err := s.catalog.GetItem(ctx, req.ItemID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", req.ItemID, err)
	}
	if !item.Availability {
		return nil, ErrItemUnavailable
	}

	if err := validateSelection(item, req.SizeSelected, req.ColorSelected); err != nil {
		return nil, err
	}

	line := domain.CartLine{
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
	}

	lines, err := loadLines(ctx, s.store, cartKey(userID))
	if err != nil {
		return nil, err
	}
	lines = append(lines, line)

	if err := persistLines(ctx, s.store, cartKey(userID), lines); err != nil {
		return nil, err
	}
	return &line, nil
}

// UpdateQuantity replaces a line's quantity. Values below 1 are rejected
// with no state change.
func (s *Service) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return s.updateLine(ctx, userID, lineID, func(line *domain.CartLine) {
		line.Quantity = quantity
	})
}

// UpdateDays replaces a line's rental duration. Values below 1 are rejected
// with no state change.
func (s *Service) UpdateDays(ctx context.Context, userID, lineID string, days int) error {
	if days < 1 {
		return ErrInvalidRentalDays
	}
	return s.updateLine(ctx, userID, lineID, func(line *domain.CartLine) {
		line.RentalDays = days
	})
}

func (s *Service) updateLine(ctx context.Context, userID, lineID string, apply func(*domain.CartLine)) error {
	key := cartKey(userID)
	lines, err := loadLines(ctx, s.store, key)
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].ID == lineID {
			apply(&lines[i])
			return persistLines(ctx, s.store, key, lines)
		}
	}
	return ErrLineNotFound
}

// Remove deletes the matching line. Removing an unknown id leaves the
// collection unchanged.
func (s *Service) Remove(ctx context.Context, userID, lineID string) error {
	key := cartKey(userID)
	lines, err := loadLines(ctx, s.store, key)
	if err != nil {
		return err
	}

	for i, line := range lines {
		if line.ID == lineID {
			lines = append(lines[:i], lines[i+1:]...)
			return persistLines(ctx, s.store, key, lines)
		}
	}
	return nil
}

// Clear empties the collection; invoked after successful checkout.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, cartKey(userID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func validateSelection(item *domain.Item, size, color string) error {
	if len(item.Sizes) > 0 {
		if size == "" {
			return ErrSizeRequired
		}
		if !item.HasSize(size) {
			return ErrUnknownSize
		}
	}
	if len(item.Colors) > 0 {
		if color == "" {
			return ErrColorRequired
		}
		if !item.HasColor(color) {
			return ErrUnknownColor
		}
	}
	return nil
}
