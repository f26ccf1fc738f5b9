package memory

import (
	"context"
	"maps"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"gocloud.dev/gcerrors"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user profile repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	if uid == "" {
		return nil, repository.ErrUserNotFound
	}

	doc, err := r.store.Get(ctx, constants.CollectionUsers, uid)
	if err != nil {
		if errors.Is(err, errDocumentNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	return model.DocToUser(uid, doc), nil
}

func (r *userRepository) Upsert(ctx context.Context, user *entity.UserProfile) error {
	now := r.store.timestamp()
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	coll := r.store.collection(constants.CollectionUsers)
	fields := model.UserToMergeDoc(user, now)

	created := maps.Clone(fields)
	created[model.FieldID] = user.UID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	created[model.FieldCreatedAt] = user.CreatedAt

	err := coll.Create(ctx, created)
	if gcerrors.Code(err) != gcerrors.AlreadyExists {
		return errors.WithStack(err)
	}

	return errors.WithStack(coll.Update(ctx, map[string]any{model.FieldID: user.UID}, toMods(fields)))
}

func (r *userRepository) FindByCompanyAndRole(ctx context.Context, companyID string, role entity.Role) ([]*entity.UserProfile, error) {
	docs, err := r.store.query(ctx, constants.CollectionUsers, 0,
		equals{field: model.FieldCompanyID, value: companyID},
		equals{field: model.FieldRole, value: role.String()},
	)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.UserProfile, 0, len(docs))
	for _, doc := range docs {
		users = append(users, model.DocToUser(docID(doc), doc))
	}

	return users, nil
}
