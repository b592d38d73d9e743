package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/nivas/backend/internal/infrastructure/config"
)

// Notifier delivers notification mail. Implementations must be safe for
// concurrent use; callers treat delivery as best-effort.
type Notifier interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// SMTPNotifier sends mail through a configured SMTP relay
type SMTPNotifier struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

// NewSMTPNotifier creates a notifier for the given SMTP settings
func NewSMTPNotifier(cfg config.EmailConfig, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		logger: logger.Named("email"),
	}
}

// Send delivers one message to the given recipients
func (n *SMTPNotifier) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("email: failed to send %q: %w", subject, err)
	}
	return nil
}

var _ Notifier = (*SMTPNotifier)(nil)

// NoopNotifier drops all mail; used when no SMTP host is configured
type NoopNotifier struct{}

// Send discards the message
func (NoopNotifier) Send(context.Context, []string, string, string) error {
	return nil
}

var _ Notifier = NoopNotifier{}

// NewFromConfig returns an SMTP notifier when mail is configured, and a
// no-op notifier otherwise.
func NewFromConfig(cfg config.EmailConfig, logger *zap.Logger) Notifier {
	if !cfg.Enabled() {
		logger.Info("email disabled: no SMTP host configured")
		return NoopNotifier{}
	}
	return NewSMTPNotifier(cfg, logger)
}
