package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

// ItemCache caches individual catalog items by id.
type ItemCache interface {
	Get(ctx context.Context, id string) (*domain.Item, error)
	Set(ctx context.Context, id string, item *domain.Item) error
}

var ErrCacheMiss = errors.New("cache miss")

// NopCache always misses; used when no Redis instance is configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*domain.Item, error) { return nil, ErrCacheMiss }
func (NopCache) Set(context.Context, string, *domain.Item) error   { return nil }

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) Get(ctx context.Context, id string) (*domain.Item, error) {
	data, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var item domain.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("unmarshal item failed: %w", err)
	}

	return &item, nil
}

func (r *RedisCache) Set(ctx context.Context, id string, item *domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, cacheKey(id), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}
