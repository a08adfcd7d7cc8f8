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

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "invalid token"},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"domain error", domain.ErrEmailNotFound, http.StatusNotFound, "Email not found"},
		{"wrapped domain error", fmt.Errorf("edit: %w", domain.ErrUserExists), http.StatusConflict, "user already exists"},
		{"unexpected error", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var env domain.Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if !env.Error || env.Code != tc.code || env.Message != tc.message {
				t.Fatalf("unexpected envelope: %+v", env)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected committed 204 to stand, got %d", rec.Code)
	}
}
