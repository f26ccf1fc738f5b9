package memory

import (
	"context"

	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
)

// txBuffer collects the writes of a transaction until it commits.
// A nil buffer applies writes immediately.
type txBuffer struct {
	writes []func(ctx context.Context) error
}

func (b *txBuffer) apply(ctx context.Context, write func(ctx context.Context) error) error {
	if b == nil {
		return write(ctx)
	}
	b.writes = append(b.writes, write)

	return nil
}

// transactionManager implements the domain's TransactionManager interface.
// Transactions are fully serialised by the store mutex and their writes are
// buffered, so a failing transaction leaves nothing behind.
type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories bound to one transaction buffer.
type repositoryFactory struct {
	store *Store
	tx    *txBuffer
}

// NewShareableResourceRepository creates a resource repository bound to the transaction.
func (f *repositoryFactory) NewShareableResourceRepository() repository.ShareableResourceRepository {
	return &shareableResourceRepository{store: f.store, tx: f.tx}
}

// NewCompanyRepository creates a company repository bound to the transaction.
func (f *repositoryFactory) NewCompanyRepository() repository.CompanyRepository {
	return &companyRepository{store: f.store, tx: f.tx}
}

// NewCompanyReservationRepository creates a reservation repository bound to the transaction.
func (f *repositoryFactory) NewCompanyReservationRepository() repository.CompanyReservationRepository {
	return &companyReservationRepository{store: f.store, tx: f.tx}
}

// NewAPIKeyRepository creates an API key repository bound to the transaction.
func (f *repositoryFactory) NewAPIKeyRepository() repository.APIKeyRepository {
	return &apiKeyRepository{store: f.store, tx: f.tx}
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn while holding the store's transaction lock and commits its
// buffered writes when fn succeeds.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	buffer := &txBuffer{}
	if err := fn(&repositoryFactory{store: tm.store, tx: buffer}); err != nil {
		return err
	}

	for _, write := range buffer.writes {
		if err := write(ctx); err != nil {
			return errors.Wrap(err, "failed to commit transaction")
		}
	}

	return nil
}
