package firestore

import (
	"context"
	"maps"
	"strings"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type userRepository struct {
	docs docs
}

// NewUserRepository creates a user profile repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{docs: docs{client: client}}
}

func (r *userRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" || strings.Contains(uid, "/") {
		return nil, repository.ErrUserNotFound
	}

	snap, err := r.docs.get(ctx, r.docs.col(constants.CollectionUsers).Doc(uid))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return model.DocToUser(uid, snap.Data()), nil
}

// Upsert tries a create first so createdAt is only ever written once, then
// falls back to a merge of the mutable fields.
func (r *userRepository) Upsert(ctx context.Context, user *entity.UserProfile) error {
	ref := r.docs.col(constants.CollectionUsers).Doc(user.UID)
	fields := model.UserToMergeDoc(user, firestore.ServerTimestamp)

	created := maps.Clone(fields)
	created[model.FieldCreatedAt] = firestore.ServerTimestamp

	err := r.docs.create(ctx, ref, created)
	if err == nil {
		return nil
	}
	if !isAlreadyExists(err) {
		return errors.Wrap(err, "create user profile")
	}

	if err := r.docs.set(ctx, ref, fields, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "merge user profile")
	}

	return nil
}

func (r *userRepository) FindByCompanyAndRole(ctx context.Context, companyID string, role entity.Role) ([]*entity.UserProfile, error) {
	q := r.docs.col(constants.CollectionUsers).
		Where(model.FieldCompanyID, "==", companyID).
		Where(model.FieldRole, "==", role.String())

	snaps, err := r.docs.all(ctx, q)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.UserProfile, 0, len(snaps))
	for _, snap := range snaps {
		users = append(users, model.DocToUser(snap.Ref.ID, snap.Data()))
	}

	return users, nil
}
