package http

import (
	"net/http"

	"github.com/technotes/backend/internal/common/logger"
)

// RequestLogMiddleware appends one line per inbound request to the request
// log: request id, method, url and declared origin. The write is best-effort
// and never affects the request itself.
func RequestLogMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(r.Context(), logger.Fields{
				"method": r.Method,
				"url":    r.URL.RequestURI(),
				"origin": r.Header.Get("Origin"),
			}).Info("request received")

			next.ServeHTTP(w, r)
		})
	}
}
