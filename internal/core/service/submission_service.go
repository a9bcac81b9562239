package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
	"github.com/pixelworks/agency-api/internal/metrics"
)

// SubmissionService implements contact intake and back-office triage.
type SubmissionService struct {
	repo    ports.SubmissionRepository
	mailer  ports.Mailer
	limiter ports.RateLimiter
	// notifyTo is the agency inbox that receives new-submission notifications.
	notifyTo string
	logger   zerolog.Logger
}

func NewSubmissionService(
	repo ports.SubmissionRepository,
	mailer ports.Mailer,
	limiter ports.RateLimiter,
	notifyTo string,
	logger zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:     repo,
		mailer:   mailer,
		limiter:  limiter,
		notifyTo: notifyTo,
		logger:   logger,
	}
}

// Intake handles the public contact form. Persistence and the notification
// email are both best-effort: either may fail without failing the request,
// so a visitor never sees an error caused by our own dependencies.
func (s *SubmissionService) Intake(ctx context.Context, input ports.IntakeInput) (*ports.IntakeResult, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", domain.ErrInvalidInput)
	}

	if s.limiter != nil && input.ClientIP != "" {
		allowed, err := s.limiter.Allow(ctx, "contact:"+input.ClientIP)
		if err != nil {
			// Rate limiter outage fails open: intake availability wins.
			s.logger.Warn().Err(err).Msg("rate limiter unavailable")
		} else if !allowed {
			return nil, domain.ErrRateLimited
		}
	}

	now := time.Now().UTC()
	sub := &domain.Submission{
		Reference: newReference(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    domain.SubmissionNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.repo.Create(ctx, sub); err != nil {
		s.logger.Error().Err(err).Str("reference", sub.Reference).Msg("failed to persist submission")
	} else {
		metrics.SubmissionsReceivedTotal.Inc()
	}

	result := &ports.IntakeResult{Reference: sub.Reference}

	if !s.mailer.Configured() {
		result.Note = "notification email not configured; submission recorded"
		return result, nil
	}

	err := s.mailer.Send(ctx, ports.MailMessage{
		To:      s.notifyTo,
		Subject: "New contact submission " + sub.Reference,
		Body:    intakeNotificationBody(sub),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("reference", sub.Reference).Msg("failed to send intake notification")
		metrics.MailsFailedTotal.Inc()
		result.Note = "submission recorded; notification could not be sent"
		return result, nil
	}

	metrics.MailsSentTotal.Inc()
	return result, nil
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SubmissionService) List(ctx context.Context, filter ports.SubmissionFilter) (*ports.SubmissionPage, error) {
	if filter.Status != "" && !domain.ValidSubmissionStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, filter.Status)
	}
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.SubmissionPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Update applies triage changes. Only status and notes are writable; status
// transitions are free-form.
func (s *SubmissionService) Update(ctx context.Context, id string, input ports.UpdateSubmissionInput) (*domain.Submission, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !domain.ValidSubmissionStatus(*input.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *input.Status)
		}
		sub.Status = *input.Status
	}
	if input.Notes != nil {
		sub.Notes = *input.Notes
	}
	sub.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Reply emails the visitor and marks the submission replied. The send happens
// first: a mail failure leaves the status untouched so the back office can
// retry, and only a confirmed dispatch flips the state.
func (s *SubmissionService) Reply(ctx context.Context, id, message string) (*domain.Submission, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: reply message is required", domain.ErrInvalidInput)
	}

	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.mailer.Configured() {
		return nil, domain.ErrMailNotConfigured
	}

	subject := "Re: your enquiry " + sub.Reference
	if sub.Subject != "" {
		subject = "Re: " + sub.Subject
	}
	if err := s.mailer.Send(ctx, ports.MailMessage{
		To:      sub.Email,
		Subject: subject,
		Body:    message,
	}); err != nil {
		s.logger.Error().Err(err).Str("reference", sub.Reference).Msg("failed to send reply")
		metrics.MailsFailedTotal.Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrMailSend, err)
	}
	metrics.MailsSentTotal.Inc()

	sub.Status = domain.SubmissionReplied
	if sub.Notes != "" {
		sub.Notes += "\n"
	}
	sub.Notes += "Replied: " + message
	sub.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, sub); err != nil {
		// The email already left; surface the persistence failure loudly.
		s.logger.Error().Err(err).Str("reference", sub.Reference).Msg("reply sent but status update failed")
		return nil, err
	}

	s.logger.Info().Str("reference", sub.Reference).Msg("submission replied")
	return sub, nil
}

// newReference builds a short human-quotable submission reference.
func newReference() string {
	return "SUB-" + strings.ToUpper(uuid.NewString()[:8])
}

func intakeNotificationBody(sub *domain.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", sub.Reference)
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}
	if sub.Service != "" {
		fmt.Fprintf(&b, "Service: %s\n", sub.Service)
	}
	if sub.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", sub.Subject)
	}
	fmt.Fprintf(&b, "\n%s\n", sub.Message)
	return b.String()
}
