package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	RequestIDMiddleware(next).ServeHTTP(rec, req)

	if seen == "" {
		t.Errorf("expected a generated request id in context")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Errorf("expected response header to carry the request id")
	}
}

func TestRequestID_PropagatedWhenPresent(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	RequestIDMiddleware(next).ServeHTTP(rec, req)

	if seen != "req-42" {
		t.Errorf("expected req-42, got %q", seen)
	}
}
