package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// IntakeInput is a public contact-form payload.
type IntakeInput struct {
	Name     string
	Email    string
	Phone    string
	Service  string
	Subject  string
	Message  string
	ClientIP string
}

// IntakeResult reports the outcome of contact intake. Note is set when the
// request succeeded in a degraded way (e.g. no mail transport configured).
type IntakeResult struct {
	Reference string
	Note      string
}

// UpdateSubmissionInput is a partial triage update: only status and notes are
// writable through the back office.
type UpdateSubmissionInput struct {
	Status *domain.SubmissionStatus
	Notes  *string
}

// SubmissionPage is a single page of submissions plus pagination metadata.
type SubmissionPage struct {
	Items      []*domain.Submission
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SubmissionService defines contact intake and back-office triage operations.
type SubmissionService interface {
	// Intake persists and notifies best-effort: a storage or mail failure
	// degrades the result rather than failing the request.
	Intake(ctx context.Context, input IntakeInput) (*IntakeResult, error)
	Get(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context, filter SubmissionFilter) (*SubmissionPage, error)
	Update(ctx context.Context, id string, input UpdateSubmissionInput) (*domain.Submission, error)
	Delete(ctx context.Context, id string) error
	// Reply sends message to the submission's stored email address and, only
	// on confirmed dispatch, transitions the status to replied.
	Reply(ctx context.Context, id, message string) (*domain.Submission, error)
}
