package service

import (
	"context"

	"displaygram/internal/domain/entity"
)

// MailPublisher defines the interface for handing notifications to a delivery queue.
type MailPublisher interface {
	// PublishMail enqueues a message for asynchronous delivery
	PublishMail(ctx context.Context, message *entity.MailMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
