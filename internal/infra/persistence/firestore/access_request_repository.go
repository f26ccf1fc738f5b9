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

type accessRequestRepository struct {
	docs docs
}

// NewAccessRequestRepository creates an access request repository.
func NewAccessRequestRepository(client *firestore.Client) repository.AccessRequestRepository {
	return &accessRequestRepository{docs: docs{client: client}}
}

func (r *accessRequestRepository) Create(ctx context.Context, request *entity.AccessRequest) error {
	ref := r.docs.col(constants.CollectionAccessRequests).NewDoc()
	request.ID = ref.ID

	if err := r.docs.create(ctx, ref, model.AccessRequestToDoc(request, firestore.ServerTimestamp)); err != nil {
		return errors.Wrap(err, "create access request")
	}

	return nil
}

type pendingUserRepository struct {
	docs docs
}

// NewPendingUserRepository creates a pending user repository.
func NewPendingUserRepository(client *firestore.Client) repository.PendingUserRepository {
	return &pendingUserRepository{docs: docs{client: client}}
}

func (r *pendingUserRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.PendingUser, error) {
	q := r.docs.col(constants.CollectionPendingUsers).
		Where(model.FieldEmail, "==", email).
		Where(model.FieldStatus, "==", string(entity.RequestStatusPending)).
		Limit(1)

	snaps, err := r.docs.all(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, repository.ErrPendingUserNotFound
	}

	return model.DocToPendingUser(snaps[0].Ref.ID, snaps[0].Data()), nil
}

func (r *pendingUserRepository) Create(ctx context.Context, pending *entity.PendingUser) error {
	ref := r.docs.col(constants.CollectionPendingUsers).NewDoc()
	pending.ID = ref.ID

	if err := r.docs.create(ctx, ref, model.PendingUserToDoc(pending, firestore.ServerTimestamp)); err != nil {
		return errors.Wrap(err, "create pending user")
	}

	return nil
}
