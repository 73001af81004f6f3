package controllers

import (
	"errors"
	"net/http"

	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/pkg/bind"
	"github.com/tommy251/Atlas2.0/pkg/logger"
	"github.com/tommy251/Atlas2.0/pkg/middleware"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

type signupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	err = c.auth.Signup(r.Context(), body.Username, body.Email, body.Password)
	if errors.Is(err, repositories.ErrUsernameTaken) {
		response.Error(w, http.StatusConflict, "username already taken")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("signup failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create account")
		return
	}

	response.Created(w, map[string]interface{}{
		"success": true,
		"message": "account created",
	})
}

// Login exchanges credentials for a signed token. Unknown usernames and wrong
// passwords get the same answer.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.Login(r.Context(), body.Username, body.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Error(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	response.Success(w, map[string]interface{}{
		"success": true,
		"message": "login successful",
		"token":   token,
		"user":    map[string]string{"username": body.Username},
	})
}

// Me reports the authenticated user. Mounted behind the auth middleware.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	username := middleware.UserFromCtx(r.Context())
	if username == "" {
		response.Unauthorized(w)
		return
	}
	response.Success(w, map[string]string{"username": username})
}
