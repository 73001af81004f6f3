package repositories

import (
	"context"
	"sync"

	"github.com/tommy251/Atlas2.0/app/models"
)

// MemoryContact is an append-only inbox of contact-form submissions.
type MemoryContact struct {
	mu       sync.Mutex
	messages []models.ContactMessage
}

func NewMemoryContact() *MemoryContact {
	return &MemoryContact{}
}

func (r *MemoryContact) Append(_ context.Context, msg models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
	return nil
}

func (r *MemoryContact) All(_ context.Context) ([]models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.ContactMessage(nil), r.messages...), nil
}
