package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
)

// WishlistService wraps the wishlist ledger and joins reads against the
// catalogue.
type WishlistService struct {
	wishlist repositories.WishlistRepository
	products repositories.ProductRepository
}

func NewWishlistService(wishlist repositories.WishlistRepository, products repositories.ProductRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, products: products}
}

// Add saves an item; repeated adds of the same key leave one entry.
// Returns the user's wishlist count after the operation.
func (s *WishlistService) Add(ctx context.Context, item models.WishlistItem) (int, error) {
	if err := s.wishlist.Add(ctx, item); err != nil {
		return 0, fmt.Errorf("wishlist add: %w", err)
	}
	return s.wishlist.Count(ctx, item.UserID)
}

// Remove drops an item; removing an absent key is a no-op.
// Returns the user's wishlist count after the operation.
func (s *WishlistService) Remove(ctx context.Context, key models.WishlistKey) (int, error) {
	if err := s.wishlist.Remove(ctx, key); err != nil {
		return 0, fmt.Errorf("wishlist remove: %w", err)
	}
	return s.wishlist.Count(ctx, key.UserID)
}

// List returns the user's wishlist joined against the catalogue for display.
func (s *WishlistService) List(ctx context.Context, userID string) ([]models.WishlistLine, error) {
	items, err := s.wishlist.ItemsFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist list: %w", err)
	}

	out := make([]models.WishlistLine, 0, len(items))
	for _, item := range items {
		line := models.WishlistLine{ItemID: item.ItemID}

		product, err := s.products.Get(ctx, item.ItemID)
		switch {
		case err == nil:
			line.ItemName = product.Name
			line.Price = product.Price
			line.ImageURL = product.ImageURL
		case errors.Is(err, repositories.ErrNotFound):
			// keep empty display fields
		default:
			return nil, fmt.Errorf("wishlist join: %w", err)
		}

		out = append(out, line)
	}

	return out, nil
}
