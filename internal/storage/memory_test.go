package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Set(ctx, "cart:u1", []byte("payload"))
	require.NoError(t, err)

	data, err := store.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	data, err := store.Get(context.Background(), "cart:missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Nil(t, data)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:u1", []byte("payload")))
	require.NoError(t, store.Delete(ctx, "cart:u1"))

	_, err := store.Get(ctx, "cart:u1")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// Deleting again is fine.
	assert.NoError(t, store.Delete(ctx, "cart:u1"))
}

func TestMemoryStore_CopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	payload := []byte("original")
	require.NoError(t, store.Set(ctx, "cart:u1", payload))
	payload[0] = 'X'

	data, err := store.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}
