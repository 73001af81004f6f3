package controllers

import (
	"net/http"

	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

type HealthController struct {
	catalog *services.CatalogService
}

func NewHealthController(catalog *services.CatalogService) *HealthController {
	return &HealthController{catalog: catalog}
}

// Root greets API explorers at /api/.
func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "Atlas API is running"})
}

// Health reports the product count and whether the feed file is reachable.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	count, err := c.catalog.Count(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("health count failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "store unavailable")
		return
	}
	response.Success(w, map[string]interface{}{
		"status":       "ok",
		"products":     count,
		"feed_present": c.catalog.FeedPresent(),
	})
}

// InitDB re-imports the catalogue feed into the store.
func (c *HealthController) InitDB(w http.ResponseWriter, r *http.Request) {
	count, warnings, err := c.catalog.Reload(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("catalog reload failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "reload failed")
		return
	}
	response.Success(w, map[string]interface{}{
		"success":  true,
		"products": count,
		"warnings": warnings,
	})
}
