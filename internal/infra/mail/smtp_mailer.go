// Package mail dispatches the OTP notification messages over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"storefront/internal/domain/service"
)

// Config holds the SMTP endpoint and sender identity.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a Mailer that delivers messages through the configured
// SMTP relay.
func NewSMTPMailer(cfg Config) (service.Mailer, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and sender address must be provided")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
		send: smtp.SendMail,
	}, nil
}

// SendVerificationCode mails the account verification code.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	body := fmt.Sprintf("Your account verification code is %s. It expires shortly, so use it right away.", code)
	return m.dispatch(ctx, email, "Verify your account", body)
}

// SendPasswordResetCode mails the password reset code.
func (m *smtpMailer) SendPasswordResetCode(ctx context.Context, email, code string) error {
	body := fmt.Sprintf("Your password reset code is %s. If you did not request a reset, you can ignore this message.", code)
	return m.dispatch(ctx, email, "Reset your password", body)
}

func (m *smtpMailer) dispatch(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body))
	if err := m.send(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
