package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/tommy251/Atlas2.0/app/models"
)

// MemoryCart keys rows by the (user, item, color, storage) composite.
// All read-modify-write on a row happens under one mutex, so back-to-back
// adds on the same key never lose an increment.
type MemoryCart struct {
	mu    sync.Mutex
	items map[models.CartKey]models.CartItem
}

func NewMemoryCart() *MemoryCart {
	return &MemoryCart{items: make(map[models.CartKey]models.CartItem)}
}

func (r *MemoryCart) Add(_ context.Context, item models.CartItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := item.Key()
	if existing, ok := r.items[key]; ok {
		// Price stays at the first-add snapshot.
		existing.Quantity += item.Quantity
		r.items[key] = existing
		return nil
	}

	r.items[key] = item
	return nil
}

func (r *MemoryCart) SetQuantity(_ context.Context, key models.CartKey, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quantity <= 0 {
		delete(r.items, key)
		return nil
	}

	existing, ok := r.items[key]
	if !ok {
		return nil
	}
	existing.Quantity = quantity
	r.items[key] = existing
	return nil
}

func (r *MemoryCart) ItemsFor(_ context.Context, userID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.CartItem{}
	for key, item := range r.items {
		if key.UserID == userID {
			out = append(out, item)
		}
	}

	// Map iteration order is random; keep output stable for clients.
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID < out[j].ItemID
		}
		if out[i].Color != out[j].Color {
			return out[i].Color < out[j].Color
		}
		return out[i].Storage < out[j].Storage
	})
	return out, nil
}
