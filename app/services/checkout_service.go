package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/pkg/auth"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/metrics"
)

// orderSeq disambiguates orders placed within the same second. A seconds
// timestamp alone can collide under concurrent checkouts.
var orderSeq atomic.Uint64

func nextOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%d", now.UTC().Format("20060102150405"), orderSeq.Add(1))
}

// InlineSignup is the optional "create account for faster checkout"
// request. The email doubles as the username.
type InlineSignup struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CheckoutResult is what a placed order hands back to the shopper.
type CheckoutResult struct {
	OrderID string
	Token   string // non-empty only when an account was created inline
}

// CheckoutService places orders and handles the optional inline signup.
type CheckoutService struct {
	orders repositories.OrderRepository
	authn  *AuthService
}

func NewCheckoutService(orders repositories.OrderRepository, authn *AuthService) *CheckoutService {
	return &CheckoutService{orders: orders, authn: authn}
}

// Place appends the order and, when requested, creates the shopper's
// account with a 30-day token. An already-taken username does not sink the
// order: the order is placed and only the token is withheld.
func (s *CheckoutService) Place(ctx context.Context, customer models.Customer, items []models.CartItem, total float64, signup *InlineSignup) (CheckoutResult, error) {
	order := models.Order{
		ID:       nextOrderID(time.Now()),
		Customer: customer,
		Items:    items,
		Total:    total,
		PlacedAt: time.Now().UTC(),
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return CheckoutResult{}, fmt.Errorf("checkout: %w", err)
	}
	metrics.OrdersPlaced.Inc()

	result := CheckoutResult{OrderID: order.ID}

	if signup != nil {
		err := s.authn.Signup(ctx, signup.Email, signup.Email, signup.Password)
		switch {
		case errors.Is(err, repositories.ErrUsernameTaken):
			logger.WithCtx(ctx).Info("checkout: inline signup skipped, username taken", "order_id", order.ID)
		case err != nil:
			return CheckoutResult{}, err
		default:
			token, err := auth.GenerateToken(signup.Email, auth.CheckoutTokenTTL)
			if err != nil {
				return CheckoutResult{}, fmt.Errorf("checkout: token: %w", err)
			}
			result.Token = token
		}
	}

	return result, nil
}
