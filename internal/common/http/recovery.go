package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/technotes/backend/internal/common/logger"
)

func RecoveryMiddleware(log *logger.Logger, errorHandler *ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Criticalf("panic recovered: %v\n%s", err, debug.Stack())
					errorHandler.HandleError(w, r, fmt.Errorf("panic: %v", err))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
