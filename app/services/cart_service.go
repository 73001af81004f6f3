package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
)

// CartSummary is the aggregate returned after every cart mutation.
type CartSummary struct {
	Count int     `json:"cart_count"`
	Total float64 `json:"total"`
}

// CartService wraps the cart ledger and joins reads against the catalogue.
type CartService struct {
	cart     repositories.CartRepository
	products repositories.ProductRepository
}

func NewCartService(cart repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{cart: cart, products: products}
}

// Add puts an item in the user's cart, incrementing the row when the exact
// (user, item, color, storage) key already exists.
func (s *CartService) Add(ctx context.Context, item models.CartItem) (CartSummary, error) {
	if err := s.cart.Add(ctx, item); err != nil {
		return CartSummary{}, fmt.Errorf("cart add: %w", err)
	}
	return s.summary(ctx, item.UserID)
}

// Update overwrites a row's quantity; zero or less removes the row.
func (s *CartService) Update(ctx context.Context, key models.CartKey, quantity int) (CartSummary, error) {
	if err := s.cart.SetQuantity(ctx, key, quantity); err != nil {
		return CartSummary{}, fmt.Errorf("cart update: %w", err)
	}
	return s.summary(ctx, key.UserID)
}

// Snapshot returns the user's cart joined against the catalogue for display.
// A cart row whose product has left the catalogue keeps empty display
// fields rather than failing the whole snapshot.
func (s *CartService) Snapshot(ctx context.Context, userID string) (models.CartSnapshot, error) {
	items, err := s.cart.ItemsFor(ctx, userID)
	if err != nil {
		return models.CartSnapshot{}, fmt.Errorf("cart snapshot: %w", err)
	}

	snap := models.CartSnapshot{Items: make([]models.CartLine, 0, len(items))}
	for _, item := range items {
		line := models.CartLine{CartItem: item}

		product, err := s.products.Get(ctx, item.ItemID)
		switch {
		case err == nil:
			line.ItemName = product.Name
			line.ImageURL = product.ImageURL
		case errors.Is(err, repositories.ErrNotFound):
			// keep empty display fields
		default:
			return models.CartSnapshot{}, fmt.Errorf("cart snapshot join: %w", err)
		}

		snap.Items = append(snap.Items, line)
		snap.Total += item.Price * float64(item.Quantity)
		snap.Count += item.Quantity
	}

	return snap, nil
}

func (s *CartService) summary(ctx context.Context, userID string) (CartSummary, error) {
	items, err := s.cart.ItemsFor(ctx, userID)
	if err != nil {
		return CartSummary{}, fmt.Errorf("cart summary: %w", err)
	}

	var sum CartSummary
	for _, item := range items {
		sum.Count += item.Quantity
		sum.Total += item.Price * float64(item.Quantity)
	}
	return sum, nil
}
