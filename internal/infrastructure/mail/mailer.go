// Package mail implements the outbound SMTP transport. When credentials are
// absent the mailer reports itself unconfigured and callers degrade
// gracefully instead of failing.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

// Config captures the SMTP settings. Host being empty means "not configured".
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends notification emails over SMTP.
type SMTPMailer struct {
	cfg    Config
	client *gomail.Client
}

// NewSMTPMailer builds a mailer from cfg. An unconfigured cfg returns a
// mailer whose Configured() is false; that is not an error.
func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	m := &SMTPMailer{cfg: cfg}
	if cfg.Host == "" || cfg.From == "" {
		return m, nil
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail client: %w", err)
	}
	m.client = client
	return m, nil
}

func (m *SMTPMailer) Configured() bool {
	return m.client != nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if m.client == nil {
		return domain.ErrMailNotConfigured
	}

	message := gomail.NewMsg()
	if err := message.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("mail send: %w", err)
	}
	return nil
}
