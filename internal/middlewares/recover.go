package middlewares

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// RecoverMiddleware returns a middleware that turns panics into a 500 JSON
// error response. It sits above the transaction middleware, which re-panics
// after rolling back.
func RecoverMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorw("panic while handling request",
						"method", r.Method,
						"uri", r.RequestURI,
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
