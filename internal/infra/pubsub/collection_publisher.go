package pubsub

import (
	"context"
	"log/slog"

	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/domain/service"
)

// collectionPublisher implements MailPublisher by writing documents to the
// "mail" collection, where the Firebase Trigger Email extension sends them
type collectionPublisher struct {
	mail   repository.MailRepository
	logger *slog.Logger
}

// NewCollectionPublisher creates a publisher backed by the mail collection
func NewCollectionPublisher(mail repository.MailRepository, logger *slog.Logger) service.MailPublisher {
	return &collectionPublisher{mail: mail, logger: logger}
}

// PublishMail stores the message as a mail document
func (p *collectionPublisher) PublishMail(ctx context.Context, message *entity.MailMessage) error {
	id, err := p.mail.Enqueue(ctx, message)
	if err != nil {
		return err
	}

	p.logger.Info("[MailCollection] Mail queued",
		slog.String("mail_id", id),
		slog.Int("recipient_count", len(message.To)),
	)

	return nil
}

// Close is a no-op; the store is owned by the persistence layer
func (p *collectionPublisher) Close() error {
	return nil
}
