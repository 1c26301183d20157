package middleware

import (
	"net/http"
	"time"

	"github.com/frontandrew/motofleet/internal/pkg/logger"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// responseWriter capture le code de statut et la taille de la réponse
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}

// LoggingMiddleware journalise chaque requête HTTP
func LoggingMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rw.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
				"bytes":       rw.written,
				"remote_addr": r.RemoteAddr,
			}
			if id := chiMiddleware.GetReqID(r.Context()); id != "" {
				fields["request_id"] = id
			}

			if rw.statusCode >= http.StatusInternalServerError {
				log.Error("HTTP request", fields)
				return
			}
			log.Info("HTTP request", fields)
		})
	}
}
