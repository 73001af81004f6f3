package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/config"
	"github.com/tommy251/Atlas2.0/pkg/cache"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/metrics"
)

const (
	cachePrefix = "catalog:"
	cacheTTL    = 5 * time.Minute
)

// CatalogService owns the product feed lifecycle and all catalogue reads.
// Read results are cached in Redis (when available) and flushed on reload.
type CatalogService struct {
	products repositories.ProductRepository
}

func NewCatalogService(products repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// Reload parses the configured product feed and replaces the store contents.
// A missing or unreadable feed is not fatal: the current catalogue is kept
// and a single warning is returned, so a bad deploy cannot empty the shop.
func (s *CatalogService) Reload(ctx context.Context) (int, []models.RowWarning, error) {
	feed := config.ProductsFeed()

	rc, err := openFeed(feed)
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		logger.WithCtx(ctx).Warn("catalog: feed unavailable", "feed", feed, "error", err)
		return 0, []models.RowWarning{{Line: 0, Message: fmt.Sprintf("feed %s unavailable: %v", feed, err)}}, nil
	}
	defer rc.Close()

	products, warnings := ParseFeed(rc)

	if err := s.products.ReplaceAll(ctx, products); err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return 0, warnings, fmt.Errorf("catalog: replace: %w", err)
	}

	for _, w := range warnings {
		metrics.CatalogRowWarnings.Inc()
		logger.WithCtx(ctx).Warn("catalog: feed row skipped or degraded", "line", w.Line, "reason", w.Message)
	}

	metrics.CatalogReloads.WithLabelValues("ok").Inc()
	metrics.CatalogProducts.Set(float64(len(products)))

	// Every cached read is stale now.
	if err := cache.FlushPrefix(cachePrefix); err != nil {
		logger.WithCtx(ctx).Warn("catalog: cache flush failed", "error", err)
	}

	return len(products), warnings, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	key := cachePrefix + "list:" + category

	var cached []models.Product
	if cache.Get(key, &cached) {
		return cached, nil
	}

	out, err := s.products.List(ctx, category)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, out, cacheTTL)
	return out, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	key := cachePrefix + "categories"

	var cached []string
	if cache.Get(key, &cached) {
		return cached, nil
	}

	out, err := s.products.Categories(ctx)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, out, cacheTTL)
	return out, nil
}

func (s *CatalogService) Search(ctx context.Context, q string) ([]models.Product, error) {
	// Deliberate short-circuit: an empty query is an empty result, never
	// the full catalogue.
	if q == "" {
		return []models.Product{}, nil
	}

	key := cachePrefix + "search:" + q

	var cached []models.Product
	if cache.Get(key, &cached) {
		return cached, nil
	}

	out, err := s.products.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, out, cacheTTL)
	return out, nil
}

func (s *CatalogService) Count(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

// FeedPresent reports whether the configured feed source exists, for the
// health endpoint.
func (s *CatalogService) FeedPresent() bool {
	return feedPresent(config.ProductsFeed())
}
