package firestore

import (
	"context"
	"time"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type apiKeyRepository struct {
	docs docs
}

// NewAPIKeyRepository creates an API key repository.
func NewAPIKeyRepository(client *firestore.Client) repository.APIKeyRepository {
	return &apiKeyRepository{docs: docs{client: client}}
}

func (r *apiKeyRepository) FindByCompany(ctx context.Context, companyID string) (entity.ExternalAPIKeys, error) {
	snap, err := r.docs.get(ctx, r.docs.col(constants.CollectionAPIKeys).Doc(companyID))
	if err != nil {
		if isNotFound(err) {
			return entity.ExternalAPIKeys{}, nil
		}

		return nil, errors.WithStack(err)
	}

	return model.DocToAPIKeys(snap.Data()), nil
}

func (r *apiKeyRepository) Save(ctx context.Context, companyID string, keys entity.ExternalAPIKeys) error {
	ref := r.docs.col(constants.CollectionAPIKeys).Doc(companyID)
	if err := r.docs.set(ctx, ref, model.APIKeysDoc(keys, time.Now()), firestore.MergeAll); err != nil {
		return errors.Wrap(err, "save api keys")
	}

	return nil
}
