package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sreerojavusa/Travelgear/internal/catalog"
	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/storage"
)

func wishlistKey(userID string) string {
	return fmt.Sprintf("wishlist:%s", userID)
}

type wishlistEnvelope struct {
	Version int                `json:"version"`
	Entries []domain.WishEntry `json:"entries"`
}

// ListWishes returns the user's saved items, empty when the slot is missing
// or unreadable.
func (s *Service) ListWishes(ctx context.Context, userID string) ([]domain.WishEntry, error) {
	data, err := s.store.Get(ctx, wishlistKey(userID))
	if errors.Is(err, storage.ErrSlotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}

	var env wishlistEnvelope
	if err := json.Unmarshal(data, &env); err != nil || env.Version != SchemaVersion {
		return nil, nil
	}
	return env.Entries, nil
}

// AddWish saves a catalog item for later. Re-adding the same item is a no-op.
func (s *Service) AddWish(ctx context.Context, userID, itemID string) (*domain.WishEntry, error) {
	item, err := s.catalog.GetItem(ctx, itemID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item %s: %w", itemID, err)
	}

	entries, err := s.ListWishes(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ItemID == itemID {
			return &entries[i], nil
		}
	}

	entry := domain.WishEntry{
		ItemID:  item.ID,
		Title:   item.Title,
		AddedAt: time.Now(),
	}
	entries = append(entries, entry)

	if err := s.persistWishes(ctx, userID, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveWish deletes a saved item; unknown ids are a no-op.
func (s *Service) RemoveWish(ctx context.Context, userID, itemID string) error {
	entries, err := s.ListWishes(ctx, userID)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if entry.ItemID == itemID {
			entries = append(entries[:i], entries[i+1:]...)
			return s.persistWishes(ctx, userID, entries)
		}
	}
	return nil
}

func (s *Service) persistWishes(ctx context.Context, userID string, entries []domain.WishEntry) error {
	data, err := json.Marshal(wishlistEnvelope{Version: SchemaVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist: %w", err)
	}
	if err := s.store.Set(ctx, wishlistKey(userID), data); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}
