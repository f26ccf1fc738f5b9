package memory

import (
	"context"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"github.com/google/uuid"
)

type mailRepository struct {
	store *Store
}

// NewMailRepository creates a mail queue repository.
func NewMailRepository(store *Store) repository.MailRepository {
	return &mailRepository{store: store}
}

func (r *mailRepository) Enqueue(ctx context.Context, message *entity.MailMessage) (string, error) {
	doc := model.MailToDoc(message, r.store.timestamp())
	id := uuid.NewString()
	doc[model.FieldID] = id

	if err := r.store.collection(constants.CollectionMail).Create(ctx, doc); err != nil {
		return "", errors.WithStack(err)
	}

	return id, nil
}
