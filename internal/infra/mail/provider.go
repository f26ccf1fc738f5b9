package mail

import (
	"log/slog"

	"displaygram/config"
	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for MailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender creates a MailSender based on configuration
func NewMailSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail

	switch cfg.Provider {
	case "", constants.MailProviderLog:
		params.Logger.Info("Using log mail sender")

		return NewLogSender(params.Logger), nil
	case constants.MailProviderSendGrid:
		params.Logger.Info("Using SendGrid mail sender", slog.String("from", cfg.From))

		return NewSendGridSender(cfg.APIKey, cfg.From, cfg.FromName, params.Logger)
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}

// Module provides the mail sender FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailSender),
)
