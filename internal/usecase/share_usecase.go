package usecase

import (
	"context"

	"displaygram/internal/domain/entity"
)

// TokenValidation is the outcome of presenting a share token.
// Resource is only set when Valid is true.
type TokenValidation struct {
	Valid    bool
	Resource map[string]any
}

// ShareUsecase defines the interface for share token use cases
type ShareUsecase interface {
	// IssueOrReuseToken returns the most recent live token of the resource,
	// issuing a new one when none is alive.
	IssueOrReuseToken(ctx context.Context, kind entity.ResourceKind, resourceID string) (*entity.ShareToken, error)

	// ValidateToken checks a presented token against the resource's live tokens.
	ValidateToken(ctx context.Context, kind entity.ResourceKind, resourceID, token string) (*TokenValidation, error)

	// ValidateCollectionAccess checks whether a signed-up user may open a collection.
	ValidateCollectionAccess(ctx context.Context, collectionID, userID string) error

	// GenerateShareQR issues or reuses a token and renders its share link as a PNG QR code.
	GenerateShareQR(ctx context.Context, kind entity.ResourceKind, resourceID string) ([]byte, error)
}
