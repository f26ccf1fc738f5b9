package repository

import "context"

// TransactionManager defines the interface for managing document store transactions.
// This allows the use case layer to handle transactions without depending on a specific store SDK.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, nothing is committed. Otherwise all writes are applied atomically.
	// All repository operations within the function observe and write the same transaction.
	// Stores with optimistic transactions may invoke fn more than once.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// Inside a transaction every read must happen before the first write.
type RepositoryFactory interface {
	// NewShareableResourceRepository returns a ShareableResourceRepository bound to the current transaction.
	NewShareableResourceRepository() ShareableResourceRepository

	// NewCompanyRepository returns a CompanyRepository bound to the current transaction.
	NewCompanyRepository() CompanyRepository

	// NewCompanyReservationRepository returns a CompanyReservationRepository bound to the current transaction.
	NewCompanyReservationRepository() CompanyReservationRepository

	// NewAPIKeyRepository returns an APIKeyRepository bound to the current transaction.
	NewAPIKeyRepository() APIKeyRepository
}
