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

	"github.com/katyregal/salon-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorEnvelope) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return rec.Code, env
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: price cannot be negative", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrServiceNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		code, env := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if env.Success {
			t.Fatalf("%v: success must be false", tc.err)
		}
		if env.Message == "" {
			t.Fatalf("%v: message must not be empty", tc.err)
		}
	}
}

func TestErrorHandler_ValidationMessageSurfaced(t *testing.T) {
	_, env := render(t, fmt.Errorf("%w: duration must be at least 1 minute", domain.ErrValidation))
	if env.Message != "validation failed: duration must be at least 1 minute" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	code, env := render(t, echo.ErrNotFound)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Message != "Route not found" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestErrorHandler_HTTPErrorPassthrough(t *testing.T) {
	code, env := render(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))
	if code != http.StatusBadRequest || env.Message != "name is required" {
		t.Fatalf("unexpected result: %d %q", code, env.Message)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, env := render(t, errors.New("mongo: socket was unexpectedly closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if env.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", env.Message)
	}
}
