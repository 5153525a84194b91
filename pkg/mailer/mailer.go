package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/shiftlinehq/shiftline-backend/pkg/config"
	"github.com/shiftlinehq/shiftline-backend/pkg/logger"
)

// Sender delivers notification mail. A nil *Mailer is a valid no-op sender
// so callers never need to branch on configuration.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type dialer interface {
	DialAndSend(...*gomail.Message) error
}

// Mailer sends HTML mail over SMTP.
type Mailer struct {
	dialer dialer
	from   string
	logg   *logger.Logger
}

// New returns a Mailer, or nil when the SMTP config is incomplete.
func New(cfg config.SMTPConfig, logg *logger.Logger) *Mailer {
	if !cfg.Enabled() {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		logg:   logg,
	}
}

// Send delivers a single message. Errors are returned, not retried.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m == nil {
		return nil
	}
	if to == "" {
		return fmt.Errorf("recipient is required")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	if m.logg != nil {
		m.logg.Info(m.logg.WithField(ctx, "mail_to", to), "mail.sent")
	}
	return nil
}
