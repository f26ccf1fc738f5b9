package repository

import (
	"context"
	"errors"

	"displaygram/internal/domain/entity"
)

// ErrPendingUserNotFound is returned when no pending signup matches the lookup.
var ErrPendingUserNotFound = errors.New("pending user not found")

// AccessRequestRepository stores requests to join a newly created company.
type AccessRequestRepository interface {
	// Create persists the request, assigning request.ID and CreatedAt.
	// The generated id is also stored on the document itself.
	Create(ctx context.Context, request *entity.AccessRequest) error
}

// PendingUserRepository stores requests to join an existing company.
type PendingUserRepository interface {
	// FindPendingByEmail returns the pending entry for email, if any.
	FindPendingByEmail(ctx context.Context, email string) (*entity.PendingUser, error)

	// Create persists the entry, assigning pending.ID and its timestamps.
	Create(ctx context.Context, pending *entity.PendingUser) error
}
