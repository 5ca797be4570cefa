package middleware

import (
	"context"
	"net/http"

	"tienda-be/internal/apperror"
	"tienda-be/internal/auth"
	"tienda-be/internal/httpx"
)

type contextKey string

const claimsKey contextKey = "tokenClaims"

// Authenticate verifies the bearer token and stores its claims in the request
// context. It rejects missing, malformed and expired tokens with 401 before
// any role check runs.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			httpx.Error(w, apperror.Unauthorized("could not validate credentials"))
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			httpx.Error(w, apperror.Unauthorized("could not validate credentials"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFrom retrieves the verified claims set by Authenticate.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// RequireRole gates a route on an exact role match. Must run after
// Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				httpx.Error(w, apperror.Unauthorized("could not validate credentials"))
				return
			}

			if claims.UserRole != role {
				httpx.Error(w, apperror.Forbidden("you do not have permission to perform this action"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
