// Package repositories holds the ledger storage backends.
//
// Every ledger is defined as an interface with two implementations: the
// default process-local in-memory maps, and MongoDB for deployments that
// need the catalogue and ledgers to survive a restart. The backend is
// selected with STORE_DRIVER (memory|mongo).
package repositories

import (
	"context"
	"errors"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/config"
)

var (
	// ErrNotFound is returned on a direct lookup of an unknown key.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned when signup hits an existing username.
	ErrUsernameTaken = errors.New("username already exists")
)

// ProductRepository is the catalogue store.
type ProductRepository interface {
	// ReplaceAll swaps the entire catalogue. Concurrent readers never
	// observe a partially-replaced catalogue.
	ReplaceAll(ctx context.Context, products []models.Product) error
	Get(ctx context.Context, id string) (models.Product, error)
	// List returns products in feed order; a non-empty category filters
	// by exact (case-sensitive) match.
	List(ctx context.Context, category string) ([]models.Product, error)
	// Categories returns the distinct category names, sorted.
	Categories(ctx context.Context) ([]string, error)
	// Search matches q as a case-insensitive substring of name, category,
	// or description. An empty query returns an empty result, not the
	// full catalogue.
	Search(ctx context.Context, q string) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

// CartRepository is the cart ledger.
type CartRepository interface {
	// Add increments the row's quantity by the requested amount, or
	// inserts the row with its price snapshot when absent.
	Add(ctx context.Context, item models.CartItem) error
	// SetQuantity overwrites the stored quantity, leaving the price
	// snapshot untouched. A quantity of zero or less deletes the row.
	SetQuantity(ctx context.Context, key models.CartKey, quantity int) error
	// ItemsFor returns the user's rows in a stable order.
	ItemsFor(ctx context.Context, userID string) ([]models.CartItem, error)
}

// WishlistRepository is the wishlist ledger.
type WishlistRepository interface {
	// Add is a no-op when the key already exists.
	Add(ctx context.Context, item models.WishlistItem) error
	// Remove is a no-op when the key is absent.
	Remove(ctx context.Context, key models.WishlistKey) error
	ItemsFor(ctx context.Context, userID string) ([]models.WishlistItem, error)
	Count(ctx context.Context, userID string) (int, error)
}

// UserRepository is the account directory.
type UserRepository interface {
	// Create inserts a new account; ErrUsernameTaken when the username
	// exists. The check and the insert happen atomically.
	Create(ctx context.Context, user models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// OrderRepository is the append-only order log.
type OrderRepository interface {
	Append(ctx context.Context, order models.Order) error
	All(ctx context.Context) ([]models.Order, error)
}

// ContactRepository is the append-only contact inbox.
type ContactRepository interface {
	Append(ctx context.Context, msg models.ContactMessage) error
	All(ctx context.Context) ([]models.ContactMessage, error)
}

// Stores bundles every ledger backend behind one handle.
type Stores struct {
	Products ProductRepository
	Cart     CartRepository
	Wishlist WishlistRepository
	Users    UserRepository
	Orders   OrderRepository
	Contact  ContactRepository
}

// New builds the store set for the configured STORE_DRIVER.
func New(ctx context.Context) (*Stores, error) {
	if config.StoreDriver() == "mongo" {
		return newMongoStores(ctx)
	}
	return NewMemoryStores(), nil
}

// NewMemoryStores builds the in-memory store set. Exported for tests.
func NewMemoryStores() *Stores {
	return &Stores{
		Products: NewMemoryProducts(),
		Cart:     NewMemoryCart(),
		Wishlist: NewMemoryWishlist(),
		Users:    NewMemoryUsers(),
		Orders:   NewMemoryOrders(),
		Contact:  NewMemoryContact(),
	}
}
