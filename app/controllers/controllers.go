// Package controllers maps HTTP requests onto the services and shapes
// every reply into the {success, data|error} envelope.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/middleware"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

// isAdmin reports whether the request carries an admin session.
func isAdmin(r *http.Request) bool {
	role, ok := middleware.RoleFromCtx(r.Context())
	return ok && role == models.RoleAdmin
}

// paramID reads the {id} route parameter. A missing or non-numeric id
// writes a 400 and returns false.
func paramID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// pageParams reads ?page= and ?limit= with sane fallbacks. Bounds are
// clamped again by the pagination helper.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}
