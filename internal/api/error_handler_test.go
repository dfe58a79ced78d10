package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caltrack/caltrack/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(discardLogger)(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrUsernameTaken, http.StatusConflict, "username already taken"},
		{domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{domain.ErrEntryNotFound, http.StatusNotFound, "diary entry not found"},
		{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
		{domain.ErrInvalidDate, http.StatusBadRequest, "date must be formatted YYYY-MM-DD"},
		{domain.ErrProfileIncomplete, http.StatusBadRequest, "profile metrics incomplete"},
		{domain.ErrProviderDisabled, http.StatusServiceUnavailable, "barcode lookup unavailable"},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.wantCode {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.wantCode, rec.Code)
		}
		if body["error"] != tc.wantMsg {
			t.Errorf("%v: expected %q, got %v", tc.err, tc.wantMsg, body["error"])
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("barcode lookup: %w", domain.ErrProductNotFound)

	rec, body := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped sentinel must still map, got %d", rec.Code)
	}
	if body["error"] != "product not found" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestHTTPErrorHandler_EchoErrorPassesThrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "missing authorization header" {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internals must not leak to the client: %v", body["error"])
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, map[string]string{"status": "done"}); err != nil {
		t.Fatalf("prime response: %v", err)
	}
	NewHTTPErrorHandler(discardLogger)(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("a committed response must not be rewritten, got %d", rec.Code)
	}
}
