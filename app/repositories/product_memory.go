package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tommy251/Atlas2.0/app/models"
)

// MemoryProducts holds the catalogue in process memory. ReplaceAll builds
// the new index fully before swapping it in, so readers holding the lock
// never see a half-loaded catalogue.
type MemoryProducts struct {
	mu      sync.RWMutex
	byID    map[string]models.Product
	ordered []models.Product // feed order
}

func NewMemoryProducts() *MemoryProducts {
	return &MemoryProducts{byID: make(map[string]models.Product)}
}

func (r *MemoryProducts) ReplaceAll(_ context.Context, products []models.Product) error {
	byID := make(map[string]models.Product, len(products))
	ordered := make([]models.Product, len(products))
	for i, p := range products {
		byID[p.ID] = p
		ordered[i] = p
	}

	r.mu.Lock()
	r.byID = byID
	r.ordered = ordered
	r.mu.Unlock()

	return nil
}

func (r *MemoryProducts) Get(_ context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryProducts) List(_ context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if category == "" {
		return append([]models.Product(nil), r.ordered...), nil
	}

	out := []models.Product{}
	for _, p := range r.ordered {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryProducts) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	for _, p := range r.ordered {
		if p.Category != "" {
			seen[p.Category] = true
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MemoryProducts) Search(_ context.Context, q string) ([]models.Product, error) {
	if q == "" {
		return []models.Product{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(q)
	out := []models.Product{}
	for _, p := range r.ordered {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryProducts) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.ordered)), nil
}
