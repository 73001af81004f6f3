package routes

import (
	"github.com/tommy251/Atlas2.0/app/controllers"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/metrics"
	"github.com/tommy251/Atlas2.0/pkg/middleware"
	"github.com/tommy251/Atlas2.0/pkg/router"
)

// Deps carries the services the API routes are built on.
type Deps struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	Wishlist *services.WishlistService
	Auth     *services.AuthService
	Checkout *services.CheckoutService
	Contact  *services.ContactService
}

func RegisterAPI(r *router.Router, deps Deps) {
	catalog := controllers.NewCatalogController(deps.Catalog)
	cart := controllers.NewCartController(deps.Cart)
	wishlist := controllers.NewWishlistController(deps.Wishlist)
	auth := controllers.NewAuthController(deps.Auth)
	checkout := controllers.NewCheckoutController(deps.Checkout)
	contact := controllers.NewContactController(deps.Contact)
	health := controllers.NewHealthController(deps.Catalog)

	api := r.Group("/api")
	api.Get("/", "api.root", health.Root)
	api.Get("/health", "api.health", health.Health)
	api.Post("/init-db", "api.init_db", health.InitDB)

	api.Get("/products", "products.list", catalog.List)
	api.Get("/products/{id}", "products.get", catalog.Get)
	api.Get("/categories", "products.categories", catalog.Categories)
	api.Get("/search", "products.search", catalog.Search)

	api.Post("/cart/add", "cart.add", cart.Add)
	api.Put("/cart/update", "cart.update", cart.Update)
	api.Get("/cart/{user_id}", "cart.get", cart.Get)

	api.Post("/wishlist/add", "wishlist.add", wishlist.Add)
	api.Delete("/wishlist/remove", "wishlist.remove", wishlist.Remove)
	api.Get("/wishlist/{user_id}", "wishlist.get", wishlist.Get)

	api.Post("/auth/signup", "auth.signup", auth.Signup)
	api.Post("/auth/login", "auth.login", auth.Login)

	protected := api.Group("", middleware.Auth)
	protected.Get("/auth/me", "auth.me", auth.Me)

	api.Post("/checkout", "checkout.place", checkout.Place)
	api.Post("/contact", "contact.submit", contact.Submit)

	if gql, err := controllers.NewGraphQLController(deps.Catalog); err != nil {
		logger.Error("graphql schema init failed", "error", err)
	} else {
		api.Post("/graphql", "graphql.query", gql.Query)
	}

	r.HandleFunc("/metrics", metrics.Handler())
}
