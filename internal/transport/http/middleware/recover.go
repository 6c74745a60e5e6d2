package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"ems/internal/domain/result"
	"ems/internal/transport/http/api"
)

// Recoverer turns panics into a generic 500 envelope. The panic detail goes
// to the server log only.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"requestId", GetRequestID(r.Context()),
					"stack", string(debug.Stack()),
				)
				api.WriteJSON(w, http.StatusInternalServerError, result.Fail[struct{}]("Internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
