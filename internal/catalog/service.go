package catalog

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/sreerojavusa/Travelgear/internal/domain"
)

// ItemSource is the read-only slice of the repository the service needs;
// lifecycle methods like Close and migrations stay with the caller.
type ItemSource interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
}

// Service fronts the catalog repository with an item cache. The catalog is
// immutable from this module's perspective, so cached entries simply expire;
// there is no invalidation path.
type Service struct {
	repo  ItemSource
	cache ItemCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo ItemSource, cache ItemCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) ListItems(ctx context.Context, filter ItemFilter) ([]*domain.Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(id, func() (interface{}, error) {
		item, err := s.cache.Get(ctx, id)
		if err == nil {
			return item, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		item, errGet := s.repo.GetItem(ctx, id)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			if errSet := s.cache.Set(context.Background(), id, item); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return item, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Item), nil
}
