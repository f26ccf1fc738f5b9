package repository

import (
	"context"
	"errors"

	"displaygram/internal/domain/entity"
)

var (
	// ErrCompanyNotFound is returned when no company matches the lookup.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrReservationNotFound is returned when a normalized name has never been reserved.
	ErrReservationNotFound = errors.New("company reservation not found")

	// ErrCompanyReserved is returned when a normalized name is already reserved.
	ErrCompanyReserved = errors.New("company name already reserved")
)

// CompanyRepository defines the operations for company persistence.
type CompanyRepository interface {
	// FindByNormalizedName returns the company whose unique key equals normalizedName.
	FindByNormalizedName(ctx context.Context, normalizedName string) (*entity.Company, error)

	// FindByName returns the first company whose display name equals companyName exactly.
	FindByName(ctx context.Context, companyName string) (*entity.Company, error)

	// Create persists a new company, assigning company.ID and its timestamps.
	Create(ctx context.Context, company *entity.Company) error
}

// CompanyReservationRepository guards the normalized company name keyspace.
// Reservations are created once and never updated or deleted.
type CompanyReservationRepository interface {
	// Find returns the reservation for normalizedName.
	Find(ctx context.Context, normalizedName string) (*entity.CompanyReservation, error)

	// Create writes the reservation, failing with ErrCompanyReserved if it exists.
	Create(ctx context.Context, reservation *entity.CompanyReservation) error
}
