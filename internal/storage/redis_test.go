package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return store, mr, cleanup
}

func TestRedisGet_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	err := mr.Set("cart:user123", `{"version":1,"lines":[]}`)
	require.NoError(t, err)

	data, err := store.Get(ctx, "cart:user123")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"lines":[]}`, string(data))
}

func TestRedisGet_NotFound(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	data, err := store.Get(context.Background(), "cart:nonexistent")
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Nil(t, data)
}

func TestRedisSet_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	err := store.Set(ctx, "checkout:user456", []byte(`{"lines":[]}`))
	require.NoError(t, err)

	stored, err := mr.Get("checkout:user456")
	require.NoError(t, err)
	assert.Equal(t, `{"lines":[]}`, stored)

	// Writes carry the expiry that keeps abandoned slots from living forever.
	assert.Equal(t, defaultSlotTTL, mr.TTL("checkout:user456"))
}

func TestRedisDelete_Success(t *testing.T) {
	store, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, mr.Set("cart:user789", "payload"))

	err := store.Delete(ctx, "cart:user789")
	require.NoError(t, err)
	assert.False(t, mr.Exists("cart:user789"))
}

func TestRedisDelete_MissingKeyIsNoop(t *testing.T) {
	store, _, cleanup := setupTestRedis(t)
	defer cleanup()

	err := store.Delete(context.Background(), "cart:missing")
	assert.NoError(t, err)
}
