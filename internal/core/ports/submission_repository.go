package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// SubmissionFilter carries query parameters for listing submissions.
type SubmissionFilter struct {
	Status domain.SubmissionStatus // optional
	Page   int
	Limit  int
}

// SubmissionRepository defines persistence operations for contact submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	FindByID(ctx context.Context, id string) (*domain.Submission, error)
	// List returns a page sorted by created_at descending plus the total count.
	List(ctx context.Context, filter SubmissionFilter) ([]*domain.Submission, int64, error)
	Update(ctx context.Context, s *domain.Submission) error
	Delete(ctx context.Context, id string) error
}
