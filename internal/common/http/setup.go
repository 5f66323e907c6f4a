package http

import (
	"net/http"

	"github.com/technotes/backend/internal/common/constants"
	"github.com/technotes/backend/internal/common/httpmetrics"
	"github.com/technotes/backend/internal/common/logger"
)

// BuildPipeline composes the ordered request chain around the routed handler:
// security headers, panic recovery, request id, request logging, the CORS
// gate, the body-size cap and the metrics collector. The 404 fallback and the
// error funnel live inside the routed handler; allowedOrigins is fixed for
// the life of the process.
func BuildPipeline(
	requestLog *logger.Logger,
	errorHandler *ErrorHandler,
	allowedOrigins []string,
	handler http.Handler,
) http.Handler {
	recovery := RecoveryMiddleware(requestLog, errorHandler)
	requestID := RequestIDMiddleware
	requestLogging := RequestLogMiddleware(requestLog)
	cors := CORSMiddleware(allowedOrigins, errorHandler)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	chain := httpmetrics.Wrap(handler)
	chain = maxRequestSize(chain)
	chain = cors(chain)
	chain = requestLogging(chain)
	chain = requestID(chain)
	chain = recovery(chain)
	return SecurityHeadersMiddleware(chain)
}
