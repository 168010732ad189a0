package middleware

import (
	"context"
	"net/http"
	"strings"
)

type userIDKeyType struct{}

var UserIDKey = userIDKeyType{}

// TokenValidator extracts the subject claim from a bearer token.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// AuthMiddleware validates the bearer JWT and injects the 'sub' claim (the
// user id) into the request context. Authorization logic beyond claim
// extraction lives upstream.
func AuthMiddleware(tokenSvc TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
				return
			}
			userID, err := tokenSvc.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
