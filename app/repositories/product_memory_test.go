package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
)

func seedProducts(t *testing.T) *repositories.MemoryProducts {
	t.Helper()
	store := repositories.NewMemoryProducts()
	err := store.ReplaceAll(context.Background(), []models.Product{
		{ID: "p1", Name: "iPhone 15", Category: "phones", Description: "latest Apple phone"},
		{ID: "p2", Name: "Pixel 9", Category: "phones", Description: "Google flagship"},
		{ID: "p3", Name: "ThinkPad X1", Category: "laptops", Description: "business laptop"},
	})
	require.NoError(t, err)
	return store
}

func TestProductsGet(t *testing.T) {
	store := seedProducts(t)

	p, err := store.Get(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Pixel 9", p.Name)

	_, err = store.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestProductsListKeepsFeedOrder(t *testing.T) {
	store := seedProducts(t)

	all, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p3", all[2].ID)
}

func TestProductsListByCategory(t *testing.T) {
	store := seedProducts(t)

	phones, err := store.List(context.Background(), "phones")
	require.NoError(t, err)
	assert.Len(t, phones, 2)

	none, err := store.List(context.Background(), "tablets")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductsCategoriesSortedDistinct(t *testing.T) {
	store := seedProducts(t)

	categories, err := store.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"laptops", "phones"}, categories)
}

func TestProductsSearch(t *testing.T) {
	store := seedProducts(t)
	ctx := context.Background()

	// case-insensitive across name, category and description
	byName, err := store.Search(ctx, "iphone")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)

	byCategory, err := store.Search(ctx, "LAPTOP")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	byDescription, err := store.Search(ctx, "flagship")
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)

	empty, err := store.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductsReplaceAllSwapsWholeCatalog(t *testing.T) {
	store := seedProducts(t)
	ctx := context.Background()

	err := store.ReplaceAll(ctx, []models.Product{{ID: "q1", Name: "New"}})
	require.NoError(t, err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = store.Get(ctx, "p1")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}
