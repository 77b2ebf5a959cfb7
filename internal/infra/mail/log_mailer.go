package mail

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that only logs the codes. Used in local
// development where no SMTP relay is available.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	m.logger.InfoContext(ctx, "verification code issued", slog.String("email", email), slog.String("code", code))
	return nil
}

func (m *logMailer) SendPasswordResetCode(ctx context.Context, email, code string) error {
	m.logger.InfoContext(ctx, "password reset code issued", slog.String("email", email), slog.String("code", code))
	return nil
}
