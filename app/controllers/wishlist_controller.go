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

type wishlistRequest struct {
	UserID string `json:"user_id" validate:"required"`
	ItemID string `json:"item_id" validate:"required"`
}

type WishlistController struct {
	wishlist *services.WishlistService
}

func NewWishlistController(wishlist *services.WishlistService) *WishlistController {
	return &WishlistController{wishlist: wishlist}
}

// Add saves an item. Re-adding the same item is a no-op and still succeeds.
func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	var body wishlistRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	count, err := c.wishlist.Add(r.Context(), models.WishlistItem{
		UserID: body.UserID,
		ItemID: body.ItemID,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("wishlist add failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not save item")
		return
	}

	response.Success(w, map[string]interface{}{
		"success":        true,
		"wishlist_count": count,
	})
}

func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	var body wishlistRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	count, err := c.wishlist.Remove(r.Context(), models.WishlistKey{
		UserID: body.UserID,
		ItemID: body.ItemID,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("wishlist remove failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not remove item")
		return
	}

	response.Success(w, map[string]interface{}{
		"success":        true,
		"wishlist_count": count,
	})
}

func (c *WishlistController) Get(w http.ResponseWriter, r *http.Request) {
	lines, err := c.wishlist.List(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("wishlist list failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load wishlist")
		return
	}
	if lines == nil {
		lines = []models.WishlistLine{}
	}
	response.Success(w, map[string]interface{}{
		"items": lines,
		"count": len(lines),
	})
}
