package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/auth"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type claimsKey struct{}

// Auth validates the Bearer token and stores the claims in the request
// context. Missing or invalid tokens get a 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")

		if token == "" || token == header {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the authenticated claims, if any.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// UserIDFromCtx returns the authenticated user's ID.
func UserIDFromCtx(ctx context.Context) (uint, bool) {
	if c, ok := ClaimsFromCtx(ctx); ok {
		return c.UserID, true
	}
	return 0, false
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(ctx context.Context) (string, bool) {
	if c, ok := ClaimsFromCtx(ctx); ok {
		return c.Role, true
	}
	return "", false
}
