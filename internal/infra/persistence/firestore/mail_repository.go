package firestore

import (
	"context"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type mailRepository struct {
	docs docs
}

// NewMailRepository creates a repository writing to the Trigger Email "mail" collection.
func NewMailRepository(client *firestore.Client) repository.MailRepository {
	return &mailRepository{docs: docs{client: client}}
}

func (r *mailRepository) Enqueue(ctx context.Context, message *entity.MailMessage) (string, error) {
	ref := r.docs.col(constants.CollectionMail).NewDoc()
	if err := r.docs.create(ctx, ref, model.MailToDoc(message, firestore.ServerTimestamp)); err != nil {
		return "", errors.Wrap(err, "enqueue mail")
	}

	return ref.ID, nil
}
