// Package storage is the durable slot store behind the cart, wishlist and
// checkout snapshot. Each slot holds one opaque serialized payload.
package storage

import (
	"context"
	"errors"
)

// SlotStore defines the interface for durable slot operations.
// Consumers define this interface, not a particular backend.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrSlotNotFound = errors.New("slot not found")
