package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/frontandrew/motofleet/internal/pkg/logger"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RecoveryMiddleware intercepte les panics et renvoie une erreur 500
func RecoveryMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("Panic recovered", map[string]interface{}{
						"error":      err,
						"stack":      string(debug.Stack()),
						"method":     r.Method,
						"path":       r.URL.Path,
						"request_id": chiMiddleware.GetReqID(r.Context()),
					})

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
