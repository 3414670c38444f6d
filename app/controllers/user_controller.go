package controllers

import (
	"errors"
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

// UserController is the admin account manager.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := r.URL.Query()

	users, p, err := c.users.List(repositories.UserFilter{
		Role:   q.Get("role"),
		Status: q.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	response.Paginated(w, users, p)
}

func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	user, err := c.users.Find(id)
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

// Suspend blocks an account. Admin accounts are immutable.
func (c *UserController) Suspend(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	user, err := c.users.Suspend(id)
	if err != nil {
		c.writeMutationError(w, err)
		return
	}
	response.Success(w, user)
}

// Activate lifts a suspension.
func (c *UserController) Activate(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	user, err := c.users.Activate(id)
	if err != nil {
		c.writeMutationError(w, err)
		return
	}
	response.Success(w, user)
}

// Destroy deletes an account. Admin accounts are immutable.
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	if err := c.users.Delete(id); err != nil {
		c.writeMutationError(w, err)
		return
	}
	response.Success(w, map[string]any{"deleted": id})
}

func (c *UserController) writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case database.IsNotFound(err):
		response.NotFound(w, "user not found")
	case errors.Is(err, services.ErrAdminImmutable):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "user update failed")
	}
}
