package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	wl := repositories.NewMemoryWishlist()
	ctx := context.Background()

	item := models.WishlistItem{UserID: "u1", ItemID: "p1"}
	require.NoError(t, wl.Add(ctx, item))
	require.NoError(t, wl.Add(ctx, item))

	count, err := wl.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWishlistRemove(t *testing.T) {
	wl := repositories.NewMemoryWishlist()
	ctx := context.Background()

	require.NoError(t, wl.Add(ctx, models.WishlistItem{UserID: "u1", ItemID: "p1"}))
	require.NoError(t, wl.Remove(ctx, models.WishlistKey{UserID: "u1", ItemID: "p1"}))

	count, err := wl.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// removing an absent row succeeds
	require.NoError(t, wl.Remove(ctx, models.WishlistKey{UserID: "u1", ItemID: "ghost"}))
}

func TestWishlistItemsForSortedAndIsolated(t *testing.T) {
	wl := repositories.NewMemoryWishlist()
	ctx := context.Background()

	require.NoError(t, wl.Add(ctx, models.WishlistItem{UserID: "u1", ItemID: "p2"}))
	require.NoError(t, wl.Add(ctx, models.WishlistItem{UserID: "u1", ItemID: "p1"}))
	require.NoError(t, wl.Add(ctx, models.WishlistItem{UserID: "u2", ItemID: "p9"}))

	items, err := wl.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ItemID)
	assert.Equal(t, "p2", items[1].ItemID)
}
