package controllers

import (
	"errors"
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/bind"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/middleware"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Conflict(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}

	response.Created(w, authResponse{User: user, Token: token})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrAccountSuspended):
			response.Error(w, http.StatusForbidden, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	response.Success(w, authResponse{User: user, Token: token})
}

// Me returns the authenticated account.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := c.auth.Me(userID)
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "user not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	response.Success(w, user)
}
