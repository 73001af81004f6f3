package controllers

import (
	"net/http"

	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/bind"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

type contactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var body contactRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if err := c.contact.Submit(r.Context(), body.Name, body.Email, body.Message); err != nil {
		logger.WithCtx(r.Context()).Error("contact submit failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not save message")
		return
	}

	response.Success(w, map[string]interface{}{
		"success": true,
		"message": "thanks, we received your message",
	})
}
