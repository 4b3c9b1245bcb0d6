// Package mail sends transactional email for the application.
package mail

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail. Implementations must not leak
// whether the recipient exists.
type Mailer interface {
	SendPasswordReset(to, name, resetURL string) error
}

// SMTPMailer sends mail through a configured SMTP relay.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTPMailer returns a Mailer backed by the given SMTP relay.
func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *SMTPMailer) SendPasswordReset(to, name, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your FitFlow password")
	msg.SetBody("text/html", passwordResetBody(name, resetURL))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}
	return nil
}

// LogMailer logs mail instead of sending it. Used in development and
// tests when no SMTP relay is configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendPasswordReset(to, name, resetURL string) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("password reset email (not sent, SMTP disabled)",
		"to", to,
		"reset_url", resetURL,
	)
	return nil
}

func passwordResetBody(name, resetURL string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your FitFlow password. Click the link
below to choose a new one. The link expires in 1 hour.</p>
<p><a href=%q>Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, name, resetURL)
}
