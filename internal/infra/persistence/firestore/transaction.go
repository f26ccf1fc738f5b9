package firestore

import (
	"context"

	"displaygram/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface using Firestore transactions.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific Firestore transaction and uses it to create
// repository instances that are bound to that single transaction.
type firestoreRepositoryFactory struct {
	docs docs
}

// NewShareableResourceRepository creates a resource repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewShareableResourceRepository() repository.ShareableResourceRepository {
	return &shareableResourceRepository{docs: f.docs}
}

// NewCompanyRepository creates a company repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewCompanyRepository() repository.CompanyRepository {
	return &companyRepository{docs: f.docs}
}

// NewCompanyReservationRepository creates a reservation repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewCompanyReservationRepository() repository.CompanyReservationRepository {
	return &companyReservationRepository{docs: f.docs}
}

// NewAPIKeyRepository creates an API key repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewAPIKeyRepository() repository.APIKeyRepository {
	return &apiKeyRepository{docs: f.docs}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside a Firestore transaction. Firestore retries fn when
// a document it read was changed concurrently, so fn must not keep state
// between attempts.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{docs: docs{client: tm.client, tx: tx}})
	})
}
