package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"secretsanta/internal/application/mailer"
	"secretsanta/internal/shared/config"
	"secretsanta/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// NewTransport returns an SMTP transport, or a transport that refuses every
// message when no SMTP host is configured.
func NewTransport(cfg *config.EmailConfig, log logger.Interface) mailer.Transport {
	if cfg.SMTPHost == "" {
		log.Warnw("email service not configured, smtp_host is empty")
		return &unconfiguredTransport{logger: log}
	}

	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.AdminAddress,
	)
	return NewSMTPTransport(cfg, log)
}

type SMTPTransport struct {
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPTransport(cfg *config.EmailConfig, log logger.Interface) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: log,
	}
}

func (s *SMTPTransport) Send(ctx context.Context, msg *mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		s.logger.Errorw("failed to send email", "to", msg.To.Email, "subject", msg.Subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", msg.To.Email, "subject", msg.Subject)
	return nil
}

func buildMessage(msg *mailer.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From.Email, msg.From.Name)
	if msg.ReplyTo != nil {
		m.SetAddressHeader("Reply-To", msg.ReplyTo.Email, msg.ReplyTo.Name)
	}
	m.SetAddressHeader("To", msg.To.Email, msg.To.Name)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)
	if msg.TextBody != "" {
		m.AddAlternative("text/plain", msg.TextBody)
	}
	return m
}

type unconfiguredTransport struct {
	logger logger.Interface
}

func (t *unconfiguredTransport) Send(_ context.Context, msg *mailer.Message) error {
	t.logger.Warnw("email service not configured, cannot send email", "to", msg.To.Email)
	return ErrEmailServiceNotConfigured
}
