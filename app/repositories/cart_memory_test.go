package repositories_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
)

func TestCartAddIncrementsSameVariant(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	item := models.CartItem{UserID: "u1", ItemID: "p1", Price: 999, Quantity: 1, Color: "Black", Storage: "128GB"}
	require.NoError(t, cart.Add(ctx, item))
	require.NoError(t, cart.Add(ctx, item))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddKeepsPriceSnapshot(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	first := models.CartItem{UserID: "u1", ItemID: "p1", Price: 999, Quantity: 1}
	require.NoError(t, cart.Add(ctx, first))

	// save price changed between the two adds; the row keeps the original
	second := first
	second.Price = 1099
	require.NoError(t, cart.Add(ctx, second))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 999.0, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartVariantsAreSeparateRows(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	black := models.CartItem{UserID: "u1", ItemID: "p1", Price: 999, Quantity: 1, Color: "Black"}
	blue := models.CartItem{UserID: "u1", ItemID: "p1", Price: 999, Quantity: 1, Color: "Blue"}
	require.NoError(t, cart.Add(ctx, black))
	require.NoError(t, cart.Add(ctx, blue))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCartAddNormalizesQuantity(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u1", ItemID: "p1", Quantity: 0}))
	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u1", ItemID: "p2", Quantity: -3}))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartSetQuantity(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	item := models.CartItem{UserID: "u1", ItemID: "p1", Price: 10, Quantity: 1}
	require.NoError(t, cart.Add(ctx, item))

	require.NoError(t, cart.SetQuantity(ctx, item.Key(), 5))
	items, _ := cart.ItemsFor(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// zero removes the row
	require.NoError(t, cart.SetQuantity(ctx, item.Key(), 0))
	items, _ = cart.ItemsFor(ctx, "u1")
	assert.Empty(t, items)
}

func TestCartSetQuantityAbsentKeyIsNoop(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	key := models.CartKey{UserID: "u1", ItemID: "ghost"}
	require.NoError(t, cart.SetQuantity(ctx, key, 3))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartItemsForIsolatesUsers(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u1", ItemID: "p1", Quantity: 1}))
	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u2", ItemID: "p2", Quantity: 1}))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ItemID)
}

func TestCartConcurrentAddsLoseNoIncrements(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()
	item := models.CartItem{UserID: "u1", ItemID: "p1", Price: 10, Quantity: 1}

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = cart.Add(ctx, item)
		}()
	}
	wg.Wait()

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, n, items[0].Quantity)
}

func TestCartItemsForSortedOutput(t *testing.T) {
	cart := repositories.NewMemoryCart()
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u1", ItemID: "p2", Quantity: 1}))
	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u1", ItemID: "p1", Color: "Blue", Quantity: 1}))
	require.NoError(t, cart.Add(ctx, models.CartItem{UserID: "u1", ItemID: "p1", Color: "Black", Quantity: 1}))

	items, err := cart.ItemsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].ItemID)
	assert.Equal(t, "Black", items[0].Color)
	assert.Equal(t, "Blue", items[1].Color)
	assert.Equal(t, "p2", items[2].ItemID)
}
