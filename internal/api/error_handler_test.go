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

	"github.com/pixelworks/agency-api/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrSubmissionNotFound, http.StatusNotFound},
		{domain.ErrSettingNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrSlugTaken, http.StatusConflict},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrSelfDelete, http.StatusBadRequest},
		{domain.ErrRateLimited, http.StatusTooManyRequests},
		{domain.ErrMailNotConfigured, http.StatusInternalServerError},
		{domain.ErrMailSend, http.StatusInternalServerError},
		{fmt.Errorf("%w: slug is bad", domain.ErrInvalidInput), http.StatusBadRequest},
		{errors.New("mongo exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if code, _ := resolveError(tc.err, log, c); code != tc.wantCode {
			t.Errorf("resolveError(%v) = %d, want %d", tc.err, code, tc.wantCode)
		}
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := fmt.Errorf("update post: %w", domain.ErrSlugTaken)
	code, msg := resolveError(err, zerolog.Nop(), c)
	if code != http.StatusConflict || msg != "slug already in use" {
		t.Errorf("got (%d, %q)", code, msg)
	}
}

func TestResolveError_UnknownErrorHidesDetail(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, msg := resolveError(errors.New("dial tcp 10.0.0.5:27017: connection refused"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Errorf("internal detail must not leak, got %q", msg)
	}
}

func TestHTTPErrorHandler_JSONEnvelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return domain.ErrPostNotFound
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "post not found" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}
