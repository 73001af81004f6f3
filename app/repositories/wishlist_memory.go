package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/tommy251/Atlas2.0/app/models"
)

// MemoryWishlist keys rows by the (user, item) composite. Rows carry no
// state beyond existence, so Add is naturally idempotent.
type MemoryWishlist struct {
	mu    sync.Mutex
	items map[models.WishlistKey]models.WishlistItem
}

func NewMemoryWishlist() *MemoryWishlist {
	return &MemoryWishlist{items: make(map[models.WishlistKey]models.WishlistItem)}
}

func (r *MemoryWishlist) Add(_ context.Context, item models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Key()
	if _, ok := r.items[key]; !ok {
		r.items[key] = item
	}
	return nil
}

func (r *MemoryWishlist) Remove(_ context.Context, key models.WishlistKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)
	return nil
}

func (r *MemoryWishlist) ItemsFor(_ context.Context, userID string) ([]models.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.WishlistItem{}
	for key, item := range r.items {
		if key.UserID == userID {
			out = append(out, item)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *MemoryWishlist) Count(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key := range r.items {
		if key.UserID == userID {
			n++
		}
	}
	return n, nil
}
