package impl

import (
	"context"
	"log/slog"
	"time"

	"displaygram/config"
	deliverycontext "displaygram/internal/delivery/context"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/domain/repository"
	"displaygram/internal/domain/service"
	"displaygram/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	txManager repository.TransactionManager
	resources repository.ShareableResourceRepository
	users     repository.UserRepository
	qrcode    service.QRCodeService
	tokenTTL  time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Resources repository.ShareableResourceRepository
	Users     repository.UserRepository
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShareService creates a new share token service instance
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	tokenTTL := entity.DefaultShareTokenTTL
	if params.Config != nil && params.Config.Share != nil && params.Config.Share.TokenTTL > 0 {
		tokenTTL = params.Config.Share.TokenTTL
	}

	return &shareService{
		txManager: params.TxManager,
		resources: params.Resources,
		users:     params.Users,
		qrcode:    params.QRCode,
		tokenTTL:  tokenTTL,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    params.Logger,
	}
}

func (s *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// IssueOrReuseToken returns the newest live token or issues a new one.
// The read-modify-write runs in a transaction so concurrent callers converge
// on a single token, and expired entries are pruned whenever one is issued.
func (s *shareService) IssueOrReuseToken(ctx context.Context, kind entity.ResourceKind, resourceID string) (*entity.ShareToken, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrBadInput, "unknown resource kind %q", kind)
	}

	var (
		token  entity.ShareToken
		reused bool
	)
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewShareableResourceRepository()

		resource, err := repo.FindByID(ctx, kind, resourceID)
		if err != nil {
			return err
		}

		now := s.now()
		if latest, ok := resource.Tokens.LatestValidAt(now); ok {
			token, reused = latest, true

			return nil
		}

		token, reused = entity.ShareToken{Token: uuid.NewString(), Expiry: now.Add(s.tokenTTL)}, false
		tokens := append(resource.Tokens.ValidAt(now), token)

		return repo.ReplaceTokens(ctx, kind, resourceID, tokens)
	})
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, resourceNotFound(kind)
		}
		s.log(ctx).Error("Failed to issue share token",
			slog.String("kind", kind.String()),
			slog.String("resource_id", resourceID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to issue share token")
	}

	s.log(ctx).Info("Share token ready",
		slog.String("kind", kind.String()),
		slog.String("resource_id", resourceID),
		slog.Bool("reused", reused),
		slog.Time("expiry", token.Expiry),
	)

	return &token, nil
}

// ValidateToken never writes and never exposes the resource unless the token is live.
func (s *shareService) ValidateToken(ctx context.Context, kind entity.ResourceKind, resourceID, token string) (*usecase.TokenValidation, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrBadInput, "unknown resource kind %q", kind)
	}

	resource, err := s.resources.FindByID(ctx, kind, resourceID)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, resourceNotFound(kind)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load shared resource")
	}

	if !resource.Tokens.MatchAt(token, s.now()) {
		s.log(ctx).Info("Share token rejected",
			slog.String("kind", kind.String()),
			slog.String("resource_id", resourceID),
		)

		return &usecase.TokenValidation{Valid: false}, nil
	}

	return &usecase.TokenValidation{Valid: true, Resource: resource.SharedView()}, nil
}

// ValidateCollectionAccess grants access to the owner, explicit shares,
// members of the owner's company and anyone when the collection allows it.
func (s *shareService) ValidateCollectionAccess(ctx context.Context, collectionID, userID string) error {
	collection, err := s.resources.FindByID(ctx, entity.ResourceKindCollection, collectionID)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return domainerrors.ErrCollectionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load collection")
	}

	if collection.IsOwnerOrSharedWith(userID) {
		return nil
	}

	if collection.OwnerID == "" {
		return domainerrors.ErrCollectionOwnerNotFound
	}
	owner, err := s.users.FindByID(ctx, collection.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrCollectionOwnerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load collection owner")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	if owner.SameCompany(user) || collection.ShareableOutsideCompany {
		return nil
	}

	s.log(ctx).Info("Collection access denied",
		slog.String("collection_id", collectionID),
		slog.String("user_id", userID),
	)

	return domainerrors.ErrAccessDenied
}

// GenerateShareQR renders the share link of a live token as a QR code.
func (s *shareService) GenerateShareQR(ctx context.Context, kind entity.ResourceKind, resourceID string) ([]byte, error) {
	token, err := s.IssueOrReuseToken(ctx, kind, resourceID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateShareQR(kind, resourceID, token.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return png, nil
}

func resourceNotFound(kind entity.ResourceKind) error {
	if kind == entity.ResourceKindCollection {
		return domainerrors.ErrCollectionNotFound
	}

	return domainerrors.ErrPostNotFound
}
