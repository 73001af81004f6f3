package repositories

import (
	"context"
	"sync"

	"github.com/tommy251/Atlas2.0/app/models"
)

// MemoryOrders is an append-only order log.
type MemoryOrders struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{}
}

func (r *MemoryOrders) Append(_ context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

func (r *MemoryOrders) All(_ context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Order(nil), r.orders...), nil
}
