package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	commonerrors "github.com/technotes/backend/internal/common/errors"
)

func TestErrorHandler_DomainError(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, commonerrors.ErrDuplicateUsername)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rec.Code)
	}

	var resp MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "Duplicate Username" {
		t.Errorf("expected 'Duplicate Username', got %q", resp.Message)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, commonerrors.ErrNoUsersFound.WithCause(errors.New("empty collection")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	var resp MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	// The cause stays server-side; only the message reaches the client.
	if resp.Message != "No users found!!" {
		t.Errorf("expected 'No users found!!', got %q", resp.Message)
	}
}

func TestErrorHandler_UnknownErrorDefaultsTo500(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	var resp MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Message != "internal server error" {
		t.Errorf("expected 'internal server error', got %q", resp.Message)
	}
}

func TestErrorHandler_NilErrorWritesNothing(t *testing.T) {
	h := newTestErrorHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	h.HandleError(rec, req, nil)

	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}
