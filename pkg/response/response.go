// Package response writes the API's JSON envelope.
//
// Every endpoint answers with {"success": true, "data": ...} or
// {"success": false, "error": "..."} so storefront and dashboard clients
// can branch on a single boolean.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Debug   interface{} `json:"debug,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created sends a 201 with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// Paginated sends a 200 with items and pagination metadata.
func Paginated(w http.ResponseWriter, items interface{}, p database.Pagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: map[string]interface{}{
		"items":      items,
		"pagination": p,
	}})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Error: message})
}

// ConfigError sends a 500 with debug flags naming the missing env vars.
func ConfigError(w http.ResponseWriter, message string, missing []string) {
	write(w, http.StatusInternalServerError, envelope{
		Success: false,
		Error:   message,
		Debug:   map[string]interface{}{"missing": missing},
	})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, envelope{
		Success: false,
		Error:   "Validation failed",
		Errors:  errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(w, http.StatusNotFound, message)
}

// Conflict sends a 409, used for duplicate-key collisions.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}
