package memory

import (
	"context"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"
)

type apiKeyRepository struct {
	store *Store
	tx    *txBuffer
}

// NewAPIKeyRepository creates an API key repository.
func NewAPIKeyRepository(store *Store) repository.APIKeyRepository {
	return &apiKeyRepository{store: store}
}

func (r *apiKeyRepository) FindByCompany(ctx context.Context, companyID string) (entity.ExternalAPIKeys, error) {
	doc, err := r.store.Get(ctx, constants.CollectionAPIKeys, companyID)
	if err != nil {
		if errors.Is(err, errDocumentNotFound) {
			return entity.ExternalAPIKeys{}, nil
		}

		return nil, err
	}

	return model.DocToAPIKeys(doc), nil
}

func (r *apiKeyRepository) Save(ctx context.Context, companyID string, keys entity.ExternalAPIKeys) error {
	doc := model.APIKeysDoc(keys, r.store.timestamp())

	return r.tx.apply(ctx, func(ctx context.Context) error {
		return r.store.Put(ctx, constants.CollectionAPIKeys, companyID, doc)
	})
}
