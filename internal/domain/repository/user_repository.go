// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"displaygram/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user profile persistence.
// Profiles are keyed by the identity provider uid.
type UserRepository interface {
	// FindByID retrieves a single profile by uid.
	FindByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Upsert merges the profile into the stored document, creating it if absent.
	// CreatedAt is only written when the document did not exist.
	Upsert(ctx context.Context, user *entity.UserProfile) error

	// FindByCompanyAndRole lists the profiles of a company holding role.
	FindByCompanyAndRole(ctx context.Context, companyID string, role entity.Role) ([]*entity.UserProfile, error)
}
