package mail

import (
	"context"
	"log/slog"
	"strings"

	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"
)

// logSender writes messages to the log instead of delivering them
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a MailSender for local development
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, message *entity.MailMessage) error {
	s.logger.InfoContext(ctx, "[LogMail] Mail delivered",
		slog.String("to", strings.Join(message.To, ",")),
		slog.String("subject", message.Subject),
		slog.String("text", message.Text),
	)

	return nil
}
