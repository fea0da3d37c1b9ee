package restapi

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// NewRecoveryMiddleware creates middleware that turns handler panics
// into 500 responses instead of dropped connections
func NewRecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.Any("panic", err),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())))

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"success": false, "error": "internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
