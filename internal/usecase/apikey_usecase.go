package usecase

import (
	"context"

	"displaygram/internal/domain/entity"
)

// APIKeyStatusOutput describes the stored keys of one integration per environment.
type APIKeyStatusOutput struct {
	Prod entity.APIKeyStatus `json:"prod"`
	Dev  entity.APIKeyStatus `json:"dev"`
}

// StoreAPIKeyInput is a key to store for the caller's company.
type StoreAPIKeyInput struct {
	Name string
	Env  entity.APIKeyEnv
	Key  string
}

// APIKeyUsecase defines the interface for managing a company's external API keys
type APIKeyUsecase interface {
	// GetKeyStatus reports which environments have a key for the integration.
	GetKeyStatus(ctx context.Context, uid, name string) (*APIKeyStatusOutput, error)

	// StoreKey replaces the caller company's key for (name, env) and returns its last four characters.
	StoreKey(ctx context.Context, uid string, input *StoreAPIKeyInput) (string, error)

	// DeleteKey removes the caller company's key for (name, env).
	DeleteKey(ctx context.Context, uid, name string, env entity.APIKeyEnv) error
}
