package firestore

import (
	"context"

	"displaygram/internal/domain/constants"
	"displaygram/internal/domain/entity"
	"displaygram/internal/domain/repository"
	"displaygram/internal/errors"
	"displaygram/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type companyRepository struct {
	docs docs
}

// NewCompanyRepository creates a company repository outside any transaction.
func NewCompanyRepository(client *firestore.Client) repository.CompanyRepository {
	return &companyRepository{docs: docs{client: client}}
}

func (r *companyRepository) FindByNormalizedName(ctx context.Context, normalizedName string) (*entity.Company, error) {
	return r.findOne(ctx, model.FieldNormalizedName, normalizedName)
}

func (r *companyRepository) FindByName(ctx context.Context, companyName string) (*entity.Company, error) {
	return r.findOne(ctx, model.FieldCompanyName, companyName)
}

func (r *companyRepository) findOne(ctx context.Context, field, value string) (*entity.Company, error) {
	q := r.docs.col(constants.CollectionCompanies).Where(field, "==", value).Limit(1)

	snaps, err := r.docs.all(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, repository.ErrCompanyNotFound
	}

	return model.DocToCompany(snaps[0].Ref.ID, snaps[0].Data()), nil
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	ref := r.docs.col(constants.CollectionCompanies).NewDoc()
	company.ID = ref.ID

	if err := r.docs.create(ctx, ref, model.CompanyToDoc(company, firestore.ServerTimestamp)); err != nil {
		return errors.Wrap(err, "create company")
	}

	return nil
}

type companyReservationRepository struct {
	docs docs
}

// NewCompanyReservationRepository creates a reservation repository outside any transaction.
func NewCompanyReservationRepository(client *firestore.Client) repository.CompanyReservationRepository {
	return &companyReservationRepository{docs: docs{client: client}}
}

func (r *companyReservationRepository) ref(normalizedName string) (*firestore.DocumentRef, error) {
	if normalizedName == "" {
		return nil, errors.New("empty reservation name")
	}

	return r.docs.col(constants.CollectionCompanyNames).Doc(model.ReservationKey(normalizedName)), nil
}

func (r *companyReservationRepository) Find(ctx context.Context, normalizedName string) (*entity.CompanyReservation, error) {
	ref, err := r.ref(normalizedName)
	if err != nil {
		return nil, err
	}

	snap, err := r.docs.get(ctx, ref)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, errors.WithStack(err)
	}

	return model.DocToReservation(normalizedName, snap.Data()), nil
}

func (r *companyReservationRepository) Create(ctx context.Context, reservation *entity.CompanyReservation) error {
	ref, err := r.ref(reservation.NormalizedName)
	if err != nil {
		return err
	}

	if err := r.docs.create(ctx, ref, model.ReservationToDoc(reservation)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrCompanyReserved
		}

		return errors.Wrap(err, "create company reservation")
	}

	return nil
}
