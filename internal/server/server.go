package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tommy251/Atlas2.0/app/routes"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/config"
	"github.com/tommy251/Atlas2.0/pkg/cache"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/metrics"
	"github.com/tommy251/Atlas2.0/pkg/middleware"
	"github.com/tommy251/Atlas2.0/pkg/reqid"
	"github.com/tommy251/Atlas2.0/pkg/router"
	"github.com/tommy251/Atlas2.0/pkg/storage"

	"github.com/tommy251/Atlas2.0/app/repositories"
)

// Start boots the API server and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	storage.Connect()

	// Redis is an accelerator, not a dependency. Run uncached when it is
	// not reachable.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, responses will not be cached", "error", err)
	}

	ctx := context.Background()
	stores, err := repositories.New(ctx)
	if err != nil {
		return fmt.Errorf("server: stores: %w", err)
	}

	catalog := services.NewCatalogService(stores.Products)
	authn := services.NewAuthService(stores.Users)
	deps := routes.Deps{
		Catalog:  catalog,
		Cart:     services.NewCartService(stores.Cart, stores.Products),
		Wishlist: services.NewWishlistService(stores.Wishlist, stores.Products),
		Auth:     authn,
		Checkout: services.NewCheckoutService(stores.Orders, authn),
		Contact:  services.NewContactService(stores.Contact),
	}

	// Import the catalogue feed on boot. A missing feed is logged and the
	// server still comes up; /api/init-db can retry later.
	if count, warnings, err := catalog.Reload(ctx); err != nil {
		logger.Warn("initial catalog import failed", "error", err)
	} else {
		logger.Info("catalog imported", "products", count, "warnings", len(warnings))
	}

	r := router.New()
	r.Use(
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		metrics.Middleware(),
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, deps)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("atlas api listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
