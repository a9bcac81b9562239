package ports

import "context"

// MailMessage is an outbound notification email.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer abstracts the SMTP transport. Configured reports whether credentials
// are present; when false, Send returns domain.ErrMailNotConfigured and
// callers decide whether that degrades or fails the operation.
type Mailer interface {
	Configured() bool
	Send(ctx context.Context, msg MailMessage) error
}

// RateLimiter guards the public contact endpoint. Allow reports whether the
// caller identified by key may proceed within the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
