package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/bind"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

type addCartRequest struct {
	UserID   string  `json:"user_id"  validate:"required"`
	ItemID   string  `json:"item_id"  validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color"`
	Storage  string  `json:"storage"`
}

type updateCartRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
	Storage  string `json:"storage"`
}

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var body addCartRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	summary, err := c.cart.Add(r.Context(), models.CartItem{
		UserID:   body.UserID,
		ItemID:   body.ItemID,
		Price:    body.Price,
		Quantity: body.Quantity,
		Color:    body.Color,
		Storage:  body.Storage,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart add failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not add to cart")
		return
	}

	response.Success(w, map[string]interface{}{
		"success":    true,
		"cart_count": summary.Count,
		"total":      summary.Total,
	})
}

// Update sets an absolute quantity. Zero or less removes the row.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	var body updateCartRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	key := models.CartKey{
		UserID:  body.UserID,
		ItemID:  body.ItemID,
		Color:   body.Color,
		Storage: body.Storage,
	}
	summary, err := c.cart.Update(r.Context(), key, body.Quantity)
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart update failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update cart")
		return
	}

	response.Success(w, map[string]interface{}{
		"success":    true,
		"cart_count": summary.Count,
		"total":      summary.Total,
	})
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.cart.Snapshot(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("cart snapshot failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load cart")
		return
	}
	response.Success(w, snapshot)
}
