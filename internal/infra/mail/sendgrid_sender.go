package mail

import (
	"context"
	"log/slog"
	"net/http"

	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

// sendGridSender delivers mail through the SendGrid v3 API
type sendGridSender struct {
	apiKey string
	host   string
	from   *sgmail.Email
	logger *slog.Logger
}

// NewSendGridSender creates a SendGrid backed MailSender
func NewSendGridSender(apiKey, from, fromName string, logger *slog.Logger) (service.MailSender, error) {
	return newSendGridSender(apiKey, sendGridHost, from, fromName, logger)
}

func newSendGridSender(apiKey, host, from, fromName string, logger *slog.Logger) (*sendGridSender, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is empty")
	}
	if from == "" {
		return nil, errors.New("from address is empty")
	}

	return &sendGridSender{
		apiKey: apiKey,
		host:   host,
		from:   sgmail.NewEmail(fromName, from),
		logger: logger,
	}, nil
}

// Send delivers the message to every recipient in a single personalization
func (s *sendGridSender) Send(ctx context.Context, message *entity.MailMessage) error {
	if len(message.To) == 0 {
		return errors.Wrap(service.ErrPermanentDelivery, "message has no recipients")
	}

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(s.buildMail(message))

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return errors.Wrap(err, "sendgrid send error")
	}

	switch {
	case response.StatusCode == http.StatusTooManyRequests || response.StatusCode >= http.StatusInternalServerError:
		return errors.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	case response.StatusCode >= http.StatusBadRequest:
		return errors.Wrapf(service.ErrPermanentDelivery, "sendgrid rejected message: status=%d, body=%s",
			response.StatusCode, response.Body)
	}

	s.logger.InfoContext(ctx, "[SendGrid] Mail sent",
		slog.Int("status", response.StatusCode),
		slog.Int("recipient_count", len(message.To)),
		slog.String("subject", message.Subject),
	)

	return nil
}

func (s *sendGridSender) buildMail(message *entity.MailMessage) *sgmail.SGMailV3 {
	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = message.Subject

	p := sgmail.NewPersonalization()
	for _, to := range message.To {
		p.AddTos(sgmail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	m.AddContent(sgmail.NewContent("text/plain", message.Text))
	if message.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", message.HTML))
	}

	return m
}
