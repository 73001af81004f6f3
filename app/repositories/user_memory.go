package repositories

import (
	"context"
	"sync"

	"github.com/tommy251/Atlas2.0/app/models"
)

// MemoryUsers keys accounts by username. The duplicate check and the
// insert happen under one lock so concurrent signups cannot both win.
type MemoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string]models.User)}
}

func (r *MemoryUsers) Create(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return ErrUsernameTaken
	}
	r.users[user.Username] = user
	return nil
}

func (r *MemoryUsers) FindByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
