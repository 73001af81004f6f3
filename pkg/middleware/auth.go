// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tommy251/Atlas2.0/pkg/auth"
	"github.com/tommy251/Atlas2.0/pkg/response"
)

type userCtxKey struct{}

// UserFromCtx returns the authenticated username stored by Auth,
// or "" when the request was not authenticated.
func UserFromCtx(ctx context.Context) string {
	if u, ok := ctx.Value(userCtxKey{}).(string); ok {
		return u
	}
	return ""
}

// Auth rejects requests without a valid bearer token and stores the token's
// subject (the username) in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey{}, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
