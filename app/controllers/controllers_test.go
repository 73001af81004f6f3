package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/app/routes"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/middleware"
	"github.com/tommy251/Atlas2.0/pkg/router"
)

func newTestServer(t *testing.T) (*httptest.Server, *repositories.Stores) {
	t.Helper()

	stores := repositories.NewMemoryStores()
	err := stores.Products.ReplaceAll(context.Background(), []models.Product{
		{ID: "p1", Name: "iPhone 15", Price: 999, Category: "phones", ImageURL: "https://cdn/p1.jpg"},
		{ID: "p2", Name: "ThinkPad X1", Price: 1499, Category: "laptops"},
	})
	require.NoError(t, err)

	catalog := services.NewCatalogService(stores.Products)
	authn := services.NewAuthService(stores.Users)

	r := router.New()
	r.Use(middleware.Recovery)
	routes.RegisterAPI(r, routes.Deps{
		Catalog:  catalog,
		Cart:     services.NewCartService(stores.Cart, stores.Products),
		Wishlist: services.NewWishlistService(stores.Wishlist, stores.Products),
		Auth:     authn,
		Checkout: services.NewCheckoutService(stores.Orders, authn),
		Contact:  services.NewContactService(stores.Contact),
	})

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return srv, stores
}

func getJSON(t *testing.T, url string, dest interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body interface{}, dest interface{}) int {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
	return resp.StatusCode
}

func TestProductsEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	var list struct {
		Products []models.Product `json:"products"`
	}
	code := getJSON(t, srv.URL+"/api/products", &list)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list.Products, 2)

	code = getJSON(t, srv.URL+"/api/products?category=phones", &list)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "p1", list.Products[0].ID)

	var product models.Product
	code = getJSON(t, srv.URL+"/api/products/p2", &product)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ThinkPad X1", product.Name)

	var missing map[string]interface{}
	code = getJSON(t, srv.URL+"/api/products/nope", &missing)
	assert.Equal(t, http.StatusNotFound, code)

	var categories struct {
		Categories []string `json:"categories"`
	}
	code = getJSON(t, srv.URL+"/api/categories", &categories)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"laptops", "phones"}, categories.Categories)
}

func TestSearchEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var result struct {
		Products []models.Product `json:"products"`
	}
	code := getJSON(t, srv.URL+"/api/search?q=thinkpad", &result)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p2", result.Products[0].ID)

	// blank query returns an empty list, not everything
	code = getJSON(t, srv.URL+"/api/search", &result)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, result.Products)
}

func TestCartFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	var added struct {
		Success   bool    `json:"success"`
		CartCount int     `json:"cart_count"`
		Total     float64 `json:"total"`
	}
	code := postJSON(t, srv.URL+"/api/cart/add", map[string]interface{}{
		"user_id": "u1", "item_id": "p1", "price": 999, "quantity": 2,
	}, &added)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, added.Success)
	assert.Equal(t, 2, added.CartCount)
	assert.Equal(t, 1998.0, added.Total)

	var snap models.CartSnapshot
	code = getJSON(t, srv.URL+"/api/cart/u1", &snap)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "iPhone 15", snap.Items[0].ItemName)
}

func TestCartAddValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	var out map[string]interface{}
	code := postJSON(t, srv.URL+"/api/cart/add", map[string]interface{}{"quantity": 1}, &out)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestAuthFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	var signup map[string]interface{}
	code := postJSON(t, srv.URL+"/api/auth/signup", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "s3cret-pass",
	}, &signup)
	require.Equal(t, http.StatusCreated, code)

	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	code = postJSON(t, srv.URL+"/api/auth/login", map[string]string{
		"username": "alice", "password": "s3cret-pass",
	}, &login)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, login.Token)

	// token unlocks the protected route
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// and without it the route is closed
	resp2, err := http.Get(srv.URL + "/api/auth/me")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestLoginBadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	var out map[string]interface{}
	code := postJSON(t, srv.URL+"/api/auth/login", map[string]string{
		"username": "ghost", "password": "whatever",
	}, &out)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCheckoutEndpoint(t *testing.T) {
	srv, stores := newTestServer(t)

	var out struct {
		Success bool   `json:"success"`
		OrderID string `json:"order_id"`
		Token   string `json:"token"`
	}
	code := postJSON(t, srv.URL+"/api/checkout", map[string]interface{}{
		"items":          []map[string]interface{}{{"item_id": "p1", "price": 999, "quantity": 1}},
		"customer":       map[string]string{"name": "Alice", "address": "1 Main St", "email": "alice@example.com", "phone": "555-0100"},
		"total":          999,
		"create_account": nil,
	}, &out)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.OrderID)
	assert.Empty(t, out.Token)

	orders, err := stores.Orders.All(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, out.OrderID, orders[0].ID)
	assert.Equal(t, "Alice", orders[0].Customer.Name)
}

func TestCheckoutWithAccountCreation(t *testing.T) {
	srv, _ := newTestServer(t)

	var out struct {
		Success bool   `json:"success"`
		OrderID string `json:"order_id"`
		Token   string `json:"token"`
	}
	code := postJSON(t, srv.URL+"/api/checkout", map[string]interface{}{
		"items":          []map[string]interface{}{{"item_id": "p1", "price": 999, "quantity": 1}},
		"customer":       map[string]string{"name": "Alice", "address": "1 Main St", "email": "alice@example.com", "phone": "555-0100"},
		"total":          999,
		"create_account": map[string]string{"email": "alice@example.com", "password": "s3cret-pass"},
	}, &out)
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, out.OrderID)
	require.NotEmpty(t, out.Token)

	// the new account logs in with the chosen password
	var login struct {
		Token string `json:"token"`
	}
	code = postJSON(t, srv.URL+"/api/auth/login", map[string]string{
		"username": "alice@example.com", "password": "s3cret-pass",
	}, &login)
	assert.Equal(t, http.StatusOK, code)
}

func TestCheckoutValidatesCustomer(t *testing.T) {
	srv, _ := newTestServer(t)

	var out map[string]interface{}
	code := postJSON(t, srv.URL+"/api/checkout", map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": "p1", "price": 999, "quantity": 1}},
		"total": 999,
	}, &out)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestContactEndpoint(t *testing.T) {
	srv, stores := newTestServer(t)

	var out map[string]interface{}
	code := postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name": "Alice", "email": "alice@example.com", "message": "Where is my order?",
	}, &out)
	require.Equal(t, http.StatusOK, code)

	saved, err := stores.Contact.All(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Where is my order?", saved[0].Message)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var out struct {
		Status   string `json:"status"`
		Products int64  `json:"products"`
	}
	code := getJSON(t, srv.URL+"/api/health", &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, int64(2), out.Products)
}

func TestGraphQLQuery(t *testing.T) {
	srv, _ := newTestServer(t)

	var out struct {
		Data struct {
			Product struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"product"`
		} `json:"data"`
	}
	code := postJSON(t, srv.URL+"/api/graphql", map[string]string{
		"query": `{ product(id: "p1") { name price } }`,
	}, &out)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "iPhone 15", out.Data.Product.Name)
	assert.Equal(t, 999.0, out.Data.Product.Price)
}
