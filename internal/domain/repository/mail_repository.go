package repository

import (
	"context"

	"displaygram/internal/domain/entity"
)

// MailRepository queues outgoing mail as documents for a mail extension to pick up.
type MailRepository interface {
	// Enqueue stores the message and returns its document id.
	Enqueue(ctx context.Context, message *entity.MailMessage) (string, error)
}
