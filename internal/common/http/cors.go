package http

import (
	"net/http"

	commonerrors "github.com/technotes/backend/internal/common/errors"
	"github.com/technotes/backend/internal/observability/metrics"
)

// CORSMiddleware gates requests against a static allow-list injected at
// construction. Requests without an Origin header (same-origin or
// non-browser clients) always pass. Denied origins terminate through the
// error funnel.
func CORSMiddleware(allowedOrigins []string, errorHandler *ErrorHandler) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[origin]; !ok {
				metrics.CORSRejectedTotal.WithLabelValues(origin).Inc()
				errorHandler.HandleError(w, r, commonerrors.ErrOriginNotAllowed)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				// The reference configuration pins preflight success to 200.
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
