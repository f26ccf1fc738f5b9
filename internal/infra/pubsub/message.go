package pubsub

import (
	"strconv"

	"displaygram/internal/domain/entity"
)

// messageAttributes builds the Pub/Sub attributes used for filtering and tracing.
func messageAttributes(message *entity.MailMessage) map[string]string {
	attributes := map[string]string{
		"kind":            "mail",
		"recipient_count": strconv.Itoa(len(message.To)),
	}
	if message.RequestID != "" {
		attributes["request_id"] = message.RequestID
	}

	return attributes
}
