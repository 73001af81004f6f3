package controllers

import (
	"net/http"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/bind"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/response"
	"github.com/tommy251/Atlas2.0/pkg/validate"
)

type checkoutCustomer struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
}

type checkoutRequest struct {
	Items []struct {
		ItemID   string  `json:"item_id"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
		Color    string  `json:"color"`
		Storage  string  `json:"storage"`
	} `json:"items" validate:"required"`
	Customer checkoutCustomer `json:"customer"`
	Total    float64          `json:"total" validate:"gte=0"`

	// Optional "create an account for faster checkout next time".
	// Absent or null means no signup.
	CreateAccount *struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"create_account"`
}

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

func (c *CheckoutController) Place(w http.ResponseWriter, r *http.Request) {
	var body checkoutRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	// validation does not descend into sub-structs; run the nested ones here
	for field, msg := range validate.Struct(&body.Customer) {
		errs[field] = msg
	}
	if body.CreateAccount != nil && len(body.CreateAccount.Password) < 8 {
		errs["password"] = "The password must be at least 8 characters."
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	items := make([]models.CartItem, 0, len(body.Items))
	for _, it := range body.Items {
		items = append(items, models.CartItem{
			UserID:   body.Customer.Email,
			ItemID:   it.ItemID,
			Price:    it.Price,
			Quantity: it.Quantity,
			Color:    it.Color,
			Storage:  it.Storage,
		})
	}

	var signup *services.InlineSignup
	if body.CreateAccount != nil {
		email := body.CreateAccount.Email
		if email == "" {
			email = body.Customer.Email
		}
		signup = &services.InlineSignup{Email: email, Password: body.CreateAccount.Password}
	}

	customer := models.Customer{
		Name:    body.Customer.Name,
		Address: body.Customer.Address,
		Email:   body.Customer.Email,
		Phone:   body.Customer.Phone,
	}
	result, err := c.checkout.Place(r.Context(), customer, items, body.Total, signup)
	if err != nil {
		logger.WithCtx(r.Context()).Error("checkout failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not place order")
		return
	}

	payload := map[string]interface{}{
		"success":  true,
		"order_id": result.OrderID,
	}
	if result.Token != "" {
		payload["token"] = result.Token
	}
	response.Created(w, payload)
}
