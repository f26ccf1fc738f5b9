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

type shareableResourceRepository struct {
	docs docs
}

// NewShareableResourceRepository creates a resource repository outside any transaction.
func NewShareableResourceRepository(client *firestore.Client) repository.ShareableResourceRepository {
	return &shareableResourceRepository{docs: docs{client: client}}
}

func (r *shareableResourceRepository) ref(kind entity.ResourceKind, id string) (*firestore.DocumentRef, error) {
	if !model.ValidDocumentID(id) {
		return nil, repository.ErrResourceNotFound
	}

	switch kind {
	case entity.ResourceKindPost:
		return r.docs.col(constants.CollectionPosts).Doc(id), nil
	case entity.ResourceKindCollection:
		return r.docs.col(constants.CollectionCollections).Doc(id), nil
	default:
		return nil, errors.Errorf("unknown resource kind %q", kind)
	}
}

func (r *shareableResourceRepository) FindByID(ctx context.Context, kind entity.ResourceKind, id string) (*entity.ShareableResource, error) {
	ref, err := r.ref(kind, id)
	if err != nil {
		return nil, err
	}

	snap, err := r.docs.get(ctx, ref)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return model.DocToShareableResource(kind, snap.Ref.ID, snap.Data()), nil
}

func (r *shareableResourceRepository) ReplaceTokens(ctx context.Context, kind entity.ResourceKind, id string, tokens entity.ShareTokens) error {
	ref, err := r.ref(kind, id)
	if err != nil {
		return err
	}

	updates := []firestore.Update{
		{Path: model.FieldTokens, Value: model.ShareTokensToDoc(tokens)},
	}
	for _, field := range model.LegacyTokenFields(kind) {
		updates = append(updates, firestore.Update{Path: field, Value: firestore.Delete})
	}

	err = r.docs.update(ctx, ref, updates)
	if err != nil {
		if isNotFound(err) {
			return repository.ErrResourceNotFound
		}

		return errors.WithStack(err)
	}

	return nil
}
