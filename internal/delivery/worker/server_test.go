package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"displaygram/config"
	deliverycontext "displaygram/internal/delivery/context"
	"displaygram/internal/delivery/worker/handler"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/service"
	mockSvc "displaygram/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWorker(t *testing.T) (*echo.Echo, *mockSvc.MockMailSender) {
	t.Helper()

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := mockSvc.NewMockMailSender(t)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		MailSender: sender,
	})

	return NewEcho(cfg, logger, pushHandler), sender
}

func pushEnvelope(t *testing.T, message *entity.MailMessage, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(message)
	require.NoError(t, err)

	var envelope handler.PubSubMessage
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.MessageID = "m-1"
	envelope.Message.Attributes = attributes
	envelope.Subscription = "projects/test/subscriptions/mail-sub"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func push(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPush_DeliversMail(t *testing.T) {
	e, sender := newWorker(t)

	message := &entity.MailMessage{
		RequestID: "payload-req",
		To:        []string{"admin@acme.com"},
		Subject:   "New access request",
		Text:      "Ada wants to join Acme",
	}

	sender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(m *entity.MailMessage) bool {
			return m.Subject == message.Subject && len(m.To) == 1 && m.To[0] == "admin@acme.com"
		})).
		Run(func(ctx context.Context, _ *entity.MailMessage) {
			assert.Equal(t, "attr-req", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := push(e, pushEnvelope(t, message, map[string]string{"request_id": "attr-req"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPush_RequestIDFallsBackToPayload(t *testing.T) {
	e, sender := newWorker(t)

	sender.EXPECT().
		Send(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *entity.MailMessage) {
			assert.Equal(t, "payload-req", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := push(e, pushEnvelope(t, &entity.MailMessage{RequestID: "payload-req", To: []string{"a@acme.com"}}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPush_DeliveryOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus int
	}{
		{
			name:       "transient failure is redelivered",
			sendErr:    errors.New("connection reset"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "permanent failure is acknowledged",
			sendErr:    errors.Wrap(service.ErrPermanentDelivery, "sendgrid status 400"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sender := newWorker(t)
			sender.EXPECT().Send(mock.Anything, mock.Anything).Return(tt.sendErr)

			rec := push(e, pushEnvelope(t, &entity.MailMessage{To: []string{"a@acme.com"}, Subject: "s"}, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPush_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "payload not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newWorker(t)

			rec := push(e, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPush_DropsMailWithoutRecipients(t *testing.T) {
	e, _ := newWorker(t)

	rec := push(e, pushEnvelope(t, &entity.MailMessage{Subject: "orphan"}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorker_Health(t *testing.T) {
	e, _ := newWorker(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
