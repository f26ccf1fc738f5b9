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

type accessRequestRepository struct {
	store *Store
}

// NewAccessRequestRepository creates an access request repository.
func NewAccessRequestRepository(store *Store) repository.AccessRequestRepository {
	return &accessRequestRepository{store: store}
}

func (r *accessRequestRepository) Create(ctx context.Context, request *entity.AccessRequest) error {
	request.ID = uuid.NewString()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = r.store.timestamp()
	}

	doc := model.AccessRequestToDoc(request, request.CreatedAt)

	return errors.WithStack(r.store.collection(constants.CollectionAccessRequests).Create(ctx, doc))
}

type pendingUserRepository struct {
	store *Store
}

// NewPendingUserRepository creates a pending user repository.
func NewPendingUserRepository(store *Store) repository.PendingUserRepository {
	return &pendingUserRepository{store: store}
}

func (r *pendingUserRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.PendingUser, error) {
	docs, err := r.store.query(ctx, constants.CollectionPendingUsers, 1,
		equals{field: model.FieldEmail, value: email},
		equals{field: model.FieldStatus, value: string(entity.RequestStatusPending)},
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, repository.ErrPendingUserNotFound
	}

	return model.DocToPendingUser(docID(docs[0]), docs[0]), nil
}

func (r *pendingUserRepository) Create(ctx context.Context, pending *entity.PendingUser) error {
	now := r.store.timestamp()
	pending.ID = uuid.NewString()
	if pending.CreatedAt.IsZero() {
		pending.CreatedAt = now
	}
	if pending.LastUpdated.IsZero() {
		pending.LastUpdated = now
	}

	doc := model.PendingUserToDoc(pending, now)
	doc[model.FieldID] = pending.ID

	return errors.WithStack(r.store.collection(constants.CollectionPendingUsers).Create(ctx, doc))
}
