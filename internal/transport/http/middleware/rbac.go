package middleware

import (
	"net/http"

	"ems/internal/domain/result"
	"ems/internal/transport/http/api"
)

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); !ok {
			api.WriteJSON(w, http.StatusUnauthorized, result.Fail[struct{}]("Authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous requests with 401 and authenticated users
// outside the allowed roles with 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.WriteJSON(w, http.StatusUnauthorized, result.Fail[struct{}]("Authentication required"))
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			api.WriteJSON(w, http.StatusForbidden, result.Fail[struct{}]("Insufficient permissions"))
		})
	}
}
