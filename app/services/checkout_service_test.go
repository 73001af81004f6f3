package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/auth"
)

func newCheckout() (*services.CheckoutService, *repositories.MemoryOrders, *services.AuthService) {
	orders := repositories.NewMemoryOrders()
	authn := services.NewAuthService(repositories.NewMemoryUsers())
	return services.NewCheckoutService(orders, authn), orders, authn
}

func testCustomer() models.Customer {
	return models.Customer{
		Name:    "Alice",
		Address: "1 Main St",
		Email:   "alice@example.com",
		Phone:   "555-0100",
	}
}

func TestCheckoutPlacesOrder(t *testing.T) {
	svc, orders, _ := newCheckout()
	ctx := context.Background()

	items := []models.CartItem{{UserID: "alice@example.com", ItemID: "p1", Price: 10, Quantity: 2}}
	result, err := svc.Place(ctx, testCustomer(), items, 20, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderID)
	assert.Empty(t, result.Token)

	placed, err := orders.All(ctx)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, result.OrderID, placed[0].ID)
	assert.Equal(t, 20.0, placed[0].Total)
	assert.False(t, placed[0].PlacedAt.IsZero())
}

func TestCheckoutOrderIDsAreUnique(t *testing.T) {
	svc, _, _ := newCheckout()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		result, err := svc.Place(ctx, testCustomer(), nil, 0, nil)
		require.NoError(t, err)
		assert.False(t, seen[result.OrderID], "order id %s repeated", result.OrderID)
		seen[result.OrderID] = true
	}
}

func TestCheckoutInlineSignupIssuesToken(t *testing.T) {
	svc, _, authn := newCheckout()
	ctx := context.Background()

	signup := &services.InlineSignup{Email: "alice@example.com", Password: "s3cret-pass"}
	result, err := svc.Place(ctx, testCustomer(), nil, 0, signup)
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := auth.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)

	// the account works for a normal login afterwards
	_, err = authn.Login(ctx, "alice@example.com", "s3cret-pass")
	assert.NoError(t, err)
}

func TestCheckoutTakenUsernameStillPlacesOrder(t *testing.T) {
	svc, orders, authn := newCheckout()
	ctx := context.Background()

	require.NoError(t, authn.Signup(ctx, "alice@example.com", "alice@example.com", "existing-pass"))

	signup := &services.InlineSignup{Email: "alice@example.com", Password: "new-pass"}
	result, err := svc.Place(ctx, testCustomer(), nil, 0, signup)
	require.NoError(t, err)
	assert.NotEmpty(t, result.OrderID)
	assert.Empty(t, result.Token)

	placed, err := orders.All(ctx)
	require.NoError(t, err)
	assert.Len(t, placed, 1)

	// the existing password is untouched
	_, err = authn.Login(ctx, "alice@example.com", "existing-pass")
	assert.NoError(t, err)
}
