package http

import (
	"net/http"
	"strings"
)

const notFoundMessage = "404 Not Found"

// NotFoundHandler answers every unmatched route. The representation is
// negotiated from the Accept header: an HTML page for HTML-accepting clients,
// a JSON object for JSON-accepting ones, plain text otherwise. The status is
// 400 to match the existing client contract.
func NotFoundHandler(page []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")

		switch {
		case accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*"):
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(page)
		case strings.Contains(accept, "application/json"):
			WriteMessage(w, http.StatusBadRequest, notFoundMessage)
		default:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(notFoundMessage))
		}
	})
}
