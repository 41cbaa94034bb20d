package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repository {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	repo, err := NewRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.RunMigrations("../../migrations/catalog")
	require.NoError(t, err)

	return repo
}

func TestListCategories(t *testing.T) {
	repo := setupTestRepo(t)

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	// Ordered by name.
	assert.Equal(t, "Backpacks", categories[0].Name)
}

func TestListItems_All(t *testing.T) {
	repo := setupTestRepo(t)

	items, err := repo.ListItems(context.Background(), ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestListItems_ByCategory(t *testing.T) {
	repo := setupTestRepo(t)

	items, err := repo.ListItems(context.Background(), ItemFilter{CategoryID: "1"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, "1", item.CategoryID)
	}
}

func TestGetItem(t *testing.T) {
	repo := setupTestRepo(t)

	item, err := repo.GetItem(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Waterproof Trekking Jacket", item.Title)
	assert.Equal(t, "Patagonia", item.Brand)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, item.Sizes)
	assert.Equal(t, []string{"Black", "Navy", "Red"}, item.Colors)
	assert.True(t, item.Availability)
	assert.Equal(t, "150", item.DailyRate.String())
	require.NotNil(t, item.WeeklyRate)
	assert.Equal(t, "800", item.WeeklyRate.String())
}

func TestRepositoryGetItem_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	item, err := repo.GetItem(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Nil(t, item)
}
