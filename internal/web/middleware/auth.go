package middleware

import (
	"context"
	"net/http"
	"strings"

	"wedding-planner/internal/auth"
	"wedding-planner/internal/logging"
)

type contextKey string

// claimsKey carries the verified session claims in the request context.
const claimsKey contextKey = "authClaims"

// RequireAuth returns middleware that validates a Bearer session token
// and rejects unauthenticated requests with 401.
func RequireAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w, r, "missing bearer token")
				return
			}

			claims, err := manager.VerifyToken(token)
			if err != nil {
				unauthorized(w, r, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the session claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(auth.Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	logging.FromContext(r.Context()).Warn("auth: rejected request",
		"path", r.URL.Path,
		"method", r.Method,
		"reason", reason,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Unauthorized"}`))
}
