package repository

import (
	"context"

	"displaygram/internal/domain/entity"
)

// APIKeyRepository stores third-party API credentials per company.
type APIKeyRepository interface {
	// FindByCompany returns the company's keys; a company without keys yields an empty list.
	FindByCompany(ctx context.Context, companyID string) (entity.ExternalAPIKeys, error)

	// Save replaces the company's key list.
	Save(ctx context.Context, companyID string, keys entity.ExternalAPIKeys) error
}
