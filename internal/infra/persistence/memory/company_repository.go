package memory

import (
	"context"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gocloud.dev/gcerrors"
)

type companyRepository struct {
	store *Store
	tx    *txBuffer
}

// NewCompanyRepository creates a company repository outside any transaction.
func NewCompanyRepository(store *Store) repository.CompanyRepository {
	return &companyRepository{store: store}
}

func (r *companyRepository) FindByNormalizedName(ctx context.Context, normalizedName string) (*entity.Company, error) {
	return r.findOne(ctx, model.FieldNormalizedName, normalizedName)
}

func (r *companyRepository) FindByName(ctx context.Context, companyName string) (*entity.Company, error) {
	return r.findOne(ctx, model.FieldCompanyName, companyName)
}

func (r *companyRepository) findOne(ctx context.Context, field, value string) (*entity.Company, error) {
	docs, err := r.store.query(ctx, constants.CollectionCompanies, 1, equals{field: field, value: value})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, repository.ErrCompanyNotFound
	}

	return model.DocToCompany(docID(docs[0]), docs[0]), nil
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	now := r.store.timestamp()
	company.ID = uuid.NewString()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	if company.LastUpdated.IsZero() {
		company.LastUpdated = now
	}

	doc := model.CompanyToDoc(company, now)
	doc[model.FieldID] = company.ID

	return r.tx.apply(ctx, func(ctx context.Context) error {
		return errors.WithStack(r.store.collection(constants.CollectionCompanies).Create(ctx, doc))
	})
}

type companyReservationRepository struct {
	store *Store
	tx    *txBuffer
}

// NewCompanyReservationRepository creates a reservation repository outside any transaction.
func NewCompanyReservationRepository(store *Store) repository.CompanyReservationRepository {
	return &companyReservationRepository{store: store}
}

func (r *companyReservationRepository) Find(ctx context.Context, normalizedName string) (*entity.CompanyReservation, error) {
	if normalizedName == "" {
		return nil, errors.New("empty reservation name")
	}

	doc, err := r.store.Get(ctx, constants.CollectionCompanyNames, model.ReservationKey(normalizedName))
	if err != nil {
		if errors.Is(err, errDocumentNotFound) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, err
	}

	return model.DocToReservation(normalizedName, doc), nil
}

func (r *companyReservationRepository) Create(ctx context.Context, reservation *entity.CompanyReservation) error {
	if reservation.NormalizedName == "" {
		return errors.New("empty reservation name")
	}

	doc := model.ReservationToDoc(reservation)
	doc[model.FieldID] = model.ReservationKey(reservation.NormalizedName)

	return r.tx.apply(ctx, func(ctx context.Context) error {
		err := r.store.collection(constants.CollectionCompanyNames).Create(ctx, doc)
		if gcerrors.Code(err) == gcerrors.AlreadyExists {
			return repository.ErrCompanyReserved
		}

		return errors.WithStack(err)
	})
}
