package memory

import (
	"context"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"gocloud.dev/docstore"
	"gocloud.dev/gcerrors"
)

type shareableResourceRepository struct {
	store *Store
	tx    *txBuffer
}

// NewShareableResourceRepository creates a resource repository outside any transaction.
func NewShareableResourceRepository(store *Store) repository.ShareableResourceRepository {
	return &shareableResourceRepository{store: store}
}

func resourceCollection(kind entity.ResourceKind, id string) (string, error) {
	if !model.ValidDocumentID(id) {
		return "", repository.ErrResourceNotFound
	}

	switch kind {
	case entity.ResourceKindPost:
		return constants.CollectionPosts, nil
	case entity.ResourceKindCollection:
		return constants.CollectionCollections, nil
	default:
		return "", errors.Errorf("unknown resource kind %q", kind)
	}
}

func (r *shareableResourceRepository) FindByID(ctx context.Context, kind entity.ResourceKind, id string) (*entity.ShareableResource, error) {
	collection, err := resourceCollection(kind, id)
	if err != nil {
		return nil, err
	}

	doc, err := r.store.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, errDocumentNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, err
	}

	return model.DocToShareableResource(kind, id, doc), nil
}

func (r *shareableResourceRepository) ReplaceTokens(ctx context.Context, kind entity.ResourceKind, id string, tokens entity.ShareTokens) error {
	collection, err := resourceCollection(kind, id)
	if err != nil {
		return err
	}

	// A nil modification deletes the field
	mods := docstore.Mods{model.FieldTokens: model.ShareTokensToDoc(tokens)}
	for _, field := range model.LegacyTokenFields(kind) {
		mods[docstore.FieldPath(field)] = nil
	}

	return r.tx.apply(ctx, func(ctx context.Context) error {
		err := r.store.collection(collection).Update(ctx, map[string]any{model.FieldID: id}, mods)
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrResourceNotFound
		}

		return errors.WithStack(err)
	})
}
