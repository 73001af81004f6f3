package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// List serves the catalogue, optionally filtered by ?category=.
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("catalog list failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load products")
		return
	}
	response.Success(w, map[string]interface{}{"products": products})
}

func (c *CatalogController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "product not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("catalog get failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load product")
		return
	}
	response.Success(w, product)
}

func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalog.Categories(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("categories failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load categories")
		return
	}
	response.Success(w, map[string]interface{}{"categories": categories})
}

// Search matches name, description and category. A blank query returns an
// empty list without touching the store.
func (c *CatalogController) Search(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("search failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "search failed")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	response.Success(w, map[string]interface{}{"products": products})
}
