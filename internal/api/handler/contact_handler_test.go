package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

type stubSubmissionService struct {
	intakeFn func(ctx context.Context, input ports.IntakeInput) (*ports.IntakeResult, error)
}

func (s *stubSubmissionService) Intake(ctx context.Context, input ports.IntakeInput) (*ports.IntakeResult, error) {
	return s.intakeFn(ctx, input)
}

func (s *stubSubmissionService) Get(context.Context, string) (*domain.Submission, error) {
	panic("not used")
}

func (s *stubSubmissionService) List(context.Context, ports.SubmissionFilter) (*ports.SubmissionPage, error) {
	panic("not used")
}

func (s *stubSubmissionService) Update(context.Context, string, ports.UpdateSubmissionInput) (*domain.Submission, error) {
	panic("not used")
}

func (s *stubSubmissionService) Delete(context.Context, string) error { panic("not used") }

func (s *stubSubmissionService) Reply(context.Context, string, string) (*domain.Submission, error) {
	panic("not used")
}

func newContactContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestContactHandler_Submit_Success(t *testing.T) {
	stub := &stubSubmissionService{
		intakeFn: func(_ context.Context, input ports.IntakeInput) (*ports.IntakeResult, error) {
			if input.Name != "Ada Lovelace" || input.Email != "ada@example.com" {
				t.Fatalf("unexpected intake input: %+v", input)
			}
			if input.ClientIP == "" {
				t.Fatal("client IP must be forwarded to the service")
			}
			return &ports.IntakeResult{Reference: "SUB-AB12CD34"}, nil
		},
	}
	handler := NewContactHandler(stub)

	c, rec := newContactContext(t, `{"name":"Ada Lovelace","email":"ada@example.com","message":"We need a new site."}`)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp contactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Reference != "SUB-AB12CD34" {
		t.Errorf("unexpected reference %q", resp.Reference)
	}
	if resp.Note != "" {
		t.Errorf("unexpected note %q", resp.Note)
	}
}

func TestContactHandler_Submit_DegradedNote(t *testing.T) {
	stub := &stubSubmissionService{
		intakeFn: func(context.Context, ports.IntakeInput) (*ports.IntakeResult, error) {
			return &ports.IntakeResult{
				Reference: "SUB-AB12CD34",
				Note:      "notification email not configured; submission recorded",
			}, nil
		},
	}
	handler := NewContactHandler(stub)

	c, rec := newContactContext(t, `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("degraded intake must still return 201, got %d", rec.Code)
	}
	var resp contactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Note == "" {
		t.Error("expected degraded note in response")
	}
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	handler := NewContactHandler(&stubSubmissionService{
		intakeFn: func(context.Context, ports.IntakeInput) (*ports.IntakeResult, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	c, _ := newContactContext(t, `{"name":"Ada","email":"not-an-email","message":"hi"}`)
	err := handler.Submit(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestContactHandler_Submit_MissingMessage(t *testing.T) {
	handler := NewContactHandler(&stubSubmissionService{
		intakeFn: func(context.Context, ports.IntakeInput) (*ports.IntakeResult, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	c, _ := newContactContext(t, `{"name":"Ada","email":"ada@example.com"}`)
	err := handler.Submit(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestContactHandler_Submit_RateLimited(t *testing.T) {
	handler := NewContactHandler(&stubSubmissionService{
		intakeFn: func(context.Context, ports.IntakeInput) (*ports.IntakeResult, error) {
			return nil, domain.ErrRateLimited
		},
	})

	c, _ := newContactContext(t, `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	if err := handler.Submit(c); err != domain.ErrRateLimited {
		t.Fatalf("expected ErrRateLimited to propagate to the error handler, got %v", err)
	}
}
