package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	message := &entity.MailMessage{
		RequestID: "req-1",
		To:        []string{"support@example.com"},
		Subject:   "New Access Request",
		Text:      "body",
	}

	require.NoError(t, publisher.PublishMail(context.Background(), message))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.MailMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *message, decoded)
}

func TestLocalHTTPPublisher_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishMail(context.Background(), &entity.MailMessage{To: []string{"a@example.com"}})
	assert.Error(t, err)
}

func TestCollectionPublisher_WritesMailDocument(t *testing.T) {
	ctx := context.Background()
	store, err := memory.NewStore()
	require.NoError(t, err)
	defer store.Close()

	publisher := NewCollectionPublisher(memory.NewMailRepository(store), testLogger())
	require.NoError(t, publisher.PublishMail(ctx, &entity.MailMessage{
		To:      []string{"a@example.com"},
		Subject: "Welcome",
		Text:    "hello",
	}))

	count, err := store.Count(ctx, constants.CollectionMail)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewPushMessage_Attributes(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	msg, err := NewPushMessage(&entity.MailMessage{To: []string{"a@example.com", "b@example.com"}}, now)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-02T03:04:05Z", msg.Message.PublishTime)
	assert.Equal(t, "2", msg.Message.Attributes["recipient_count"])
	assert.NotContains(t, msg.Message.Attributes, "request_id")
}
