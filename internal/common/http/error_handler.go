package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/technotes/backend/internal/common/errors"
	"github.com/technotes/backend/internal/common/httpmetrics"
	"github.com/technotes/backend/internal/common/logger"
	"github.com/technotes/backend/internal/observability/metrics"
)

// ErrorHandler is the single funnel for every failure raised anywhere in the
// pipeline: controller errors, CORS denials and unexpected failures all end
// up here. It logs one line to the error log, bumps the error counters and
// writes the error's status with a {message} body. Errors without an
// associated status render as 500.
type ErrorHandler struct {
	log *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		h.handleDomainError(w, r, domainErr)
		return
	}

	h.log.WithFields(r.Context(), logger.Fields{
		"error":  err.Error(),
		"method": r.Method,
		"url":    r.URL.RequestURI(),
		"origin": r.Header.Get("Origin"),
	}).Error("unhandled error")

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteMessage(w, http.StatusInternalServerError, commonerrors.ErrInternalError.Message())
}

func (h *ErrorHandler) handleDomainError(w http.ResponseWriter, r *http.Request, err commonerrors.DomainError) {
	status := err.HTTPStatus()

	h.log.WithFields(r.Context(), logger.Fields{
		"error_code": err.Code(),
		"category":   string(err.Category()),
		"status":     status,
		"method":     r.Method,
		"url":        r.URL.RequestURI(),
		"origin":     r.Header.Get("Origin"),
	}).Errorf("%s: %s", err.Code(), err.Error())

	metrics.DomainErrorsTotal.WithLabelValues(
		string(err.Category()),
		err.Code(),
		strconv.Itoa(status),
	).Inc()

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(status),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteMessage(w, status, err.Message())
}
