package repository

import (
	"context"
	"errors"

	"displaygram/internal/domain/entity"
)

// ErrResourceNotFound is returned when a post or collection does not exist.
var ErrResourceNotFound = errors.New("shareable resource not found")

// ShareableResourceRepository reads shareable documents and maintains their token sequence.
type ShareableResourceRepository interface {
	// FindByID loads a post or collection including its share tokens.
	// Legacy single-token fields are folded into the sequence as the oldest entry.
	FindByID(ctx context.Context, kind entity.ResourceKind, id string) (*entity.ShareableResource, error)

	// ReplaceTokens overwrites the token sequence of the resource.
	// Other document fields are left untouched.
	ReplaceTokens(ctx context.Context, kind entity.ResourceKind, id string, tokens entity.ShareTokens) error
}
