package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"displaygram/config"
	deliverycontext "displaygram/internal/delivery/context"
	"displaygram/internal/domain/entity"
	domainerrors "displaygram/internal/domain/errors"
	"displaygram/internal/domain/repository"
	"displaygram/internal/domain/service"
	"displaygram/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// signupService implements the SignupUsecase interface.
type signupService struct {
	txManager          repository.TransactionManager
	companies          repository.CompanyRepository
	accessRequests     repository.AccessRequestRepository
	pendingUsers       repository.PendingUserRepository
	users              repository.UserRepository
	identity           service.IdentityProvider
	publisher          service.MailPublisher
	validate           *validator.Validate
	supportEmail       string
	productName        string
	defaultCompanyType entity.CompanyType
	logger             *slog.Logger
}

// SignupServiceParams holds dependencies for SignupService, injected by Fx.
type SignupServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Companies      repository.CompanyRepository
	AccessRequests repository.AccessRequestRepository
	PendingUsers   repository.PendingUserRepository
	Users          repository.UserRepository
	Identity       service.IdentityProvider
	Publisher      service.MailPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSignupService creates a new signup service instance
func NewSignupService(params SignupServiceParams) usecase.SignupUsecase {
	srv := &signupService{
		txManager:          params.TxManager,
		companies:          params.Companies,
		accessRequests:     params.AccessRequests,
		pendingUsers:       params.PendingUsers,
		users:              params.Users,
		identity:           params.Identity,
		publisher:          params.Publisher,
		validate:           validator.New(),
		supportEmail:       "support@displaygram.com",
		productName:        "Displaygram",
		defaultCompanyType: entity.CompanyTypeDistributor,
		logger:             params.Logger,
	}

	if params.Config != nil && params.Config.Signup != nil {
		signup := params.Config.Signup
		if signup.SupportEmail != "" {
			srv.supportEmail = signup.SupportEmail
		}
		if signup.ProductName != "" {
			srv.productName = signup.ProductName
		}
		if t := entity.CompanyType(signup.DefaultCompanyType); t.IsValid() {
			srv.defaultCompanyType = t
		}
	}

	return srv
}

func (srv *signupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *signupService) isEmail(email string) bool {
	return srv.validate.Var(email, "required,email") == nil
}

// ReserveAndCreate creates a provisional company for the first user of a new
// company. The reservation record on the normalized name is the only
// correctness guarantee; the query before it merely short-circuits the
// common case without side effects.
func (srv *signupService) ReserveAndCreate(ctx context.Context, input *usecase.CompanySignupInput) (*usecase.CompanySignupOutput, error) {
	companyType, err := srv.checkCompanySignup(input)
	if err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.WorkEmail)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	normalizedName := entity.NormalizeCompanyName(input.CompanyName)

	_, err = srv.companies.FindByNormalizedName(ctx, normalizedName)
	if err == nil {
		srv.log(ctx).Info("Company signup rejected, company exists", slog.String("normalized_name", normalizedName))

		return nil, domainerrors.ErrCompanyExistsRequiresInvite
	}
	if !errors.Is(err, repository.ErrCompanyNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up company")
	}

	company := entity.NewProvisionalCompany(input.CompanyName, companyType, entity.Contact{
		Name:  entity.FullName(firstName, lastName),
		Email: email,
		Phone: strings.TrimSpace(input.Phone),
	})
	companyID, err := srv.reserveCompany(ctx, company)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Company reserved",
		slog.String("company_id", companyID),
		slog.String("normalized_name", normalizedName),
	)

	// Everything below is outside the transaction. The company stays reserved
	// if any of it fails and the access request is the record to recover from.
	account, err := srv.ensureAccount(ctx, &entity.AccountToCreate{
		Email:       email,
		Password:    input.Password,
		DisplayName: entity.FullName(firstName, lastName),
	})
	if err != nil {
		return nil, err
	}

	request := &entity.AccessRequest{
		UID:          account.UID,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        strings.TrimSpace(input.Phone),
		Notes:        strings.TrimSpace(input.Notes),
		UserTypeHint: companyType,
		CompanyName:  company.CompanyName,
		CompanyID:    companyID,
		Status:       entity.RequestStatusPending,
	}
	if err := srv.accessRequests.Create(ctx, request); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create access request")
	}

	if err := srv.users.Upsert(ctx, &entity.UserProfile{
		UID:       account.UID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CompanyID: companyID,
		Role:      entity.RolePending,
	}); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user profile")
	}

	// Claims are applied on the next sign-in; the profile already carries them.
	if err := srv.identity.SetCustomClaims(ctx, account.UID, entity.AccountClaims{
		Role:      entity.RolePending,
		CompanyID: companyID,
	}); err != nil {
		srv.log(ctx).Warn("Failed to set custom claims", slog.String("uid", account.UID), slog.Any("error", err))
	}

	srv.notifyCompanySignup(ctx, request)

	return &usecase.CompanySignupOutput{CompanyID: companyID, RequestID: request.ID}, nil
}

func (srv *signupService) checkCompanySignup(input *usecase.CompanySignupInput) (entity.CompanyType, error) {
	if input == nil ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.CompanyName) == "" ||
		!srv.isEmail(entity.NormalizeEmail(input.WorkEmail)) {
		return "", errors.Wrap(domainerrors.ErrBadInput, "missing required fields")
	}

	if input.Password != "" && len(input.Password) < minPasswordLength {
		return "", domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if input.UserTypeHint == "" {
		return srv.defaultCompanyType, nil
	}
	companyType := entity.CompanyType(strings.ToLower(strings.TrimSpace(input.UserTypeHint)))
	if !companyType.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("userTypeHint must be 'distributor' or 'supplier'")
	}

	return companyType, nil
}

// reserveCompany atomically checks the reservation and writes the company
// together with its reservation record.
func (srv *signupService) reserveCompany(ctx context.Context, company *entity.Company) (string, error) {
	var companyID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reservations := repoFactory.NewCompanyReservationRepository()

		_, err := reservations.Find(ctx, company.NormalizedName)
		if err == nil {
			return repository.ErrCompanyReserved
		}
		if !errors.Is(err, repository.ErrReservationNotFound) {
			return err
		}

		// Transactions may be retried, so work on a fresh copy each attempt.
		attempt := *company
		if err := repoFactory.NewCompanyRepository().Create(ctx, &attempt); err != nil {
			return err
		}
		companyID = attempt.ID

		return reservations.Create(ctx, &entity.CompanyReservation{
			NormalizedName: company.NormalizedName,
			CompanyID:      attempt.ID,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrCompanyReserved) {
			srv.log(ctx).Info("Company signup lost reservation race", slog.String("normalized_name", company.NormalizedName))

			return "", domainerrors.ErrCompanyExistsRequiresInvite
		}
		srv.log(ctx).Error("Failed to reserve company", slog.String("normalized_name", company.NormalizedName), slog.Any("error", err))

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to reserve company")
	}

	company.ID = companyID

	return companyID, nil
}

// ensureAccount creates the account, or adopts the existing one for the e-mail.
func (srv *signupService) ensureAccount(ctx context.Context, toCreate *entity.AccountToCreate) (*entity.Account, error) {
	account, err := srv.identity.CreateUser(ctx, toCreate)
	if err == nil {
		return account, nil
	}

	if errors.Is(err, service.ErrAccountExists) {
		account, err = srv.identity.GetUserByEmail(ctx, toCreate.Email)
		if err == nil {
			srv.log(ctx).Info("Adopting existing account for signup", slog.String("uid", account.UID))

			return account, nil
		}
	}

	srv.log(ctx).Error("Failed to create account", slog.String("email", toCreate.Email), slog.Any("error", err))

	return nil, domainerrors.ErrUpstreamFailure.WithDetails("failed to create account: " + err.Error())
}

func (srv *signupService) notifyCompanySignup(ctx context.Context, request *entity.AccessRequest) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	srv.publish(ctx, &entity.MailMessage{
		RequestID: requestID,
		To:        []string{srv.supportEmail},
		Subject:   fmt.Sprintf("New Access Request: %s (%s)", entity.FullName(request.FirstName, request.LastName), request.Email),
		Text: fmt.Sprintf("User requested access.\nCompany: %s\nType: %s\nPhone: %s\nNotes: %s\nRequestId: %s\nCompanyId: %s",
			request.CompanyName, request.UserTypeHint, request.Phone, request.Notes, request.ID, request.CompanyID),
	})

	verifyLink, err := srv.identity.EmailVerificationLink(ctx, request.Email)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate email verification link", slog.String("uid", request.UID), slog.Any("error", err))
		verifyLink = ""
	}

	text := fmt.Sprintf("Thanks %s! We created your account in pending mode.\n", request.FirstName)
	if verifyLink != "" {
		text += fmt.Sprintf("Please verify your email: %s\n", verifyLink)
	}
	text += "We'll review and finish setup shortly."

	srv.publish(ctx, &entity.MailMessage{
		RequestID: requestID,
		To:        []string{request.Email},
		Subject:   fmt.Sprintf("Welcome to %s - You're set to pending", srv.productName),
		Text:      text,
	})
}

// SubmitSignupRequest records a request to join an existing company. Repeat
// submissions for the same e-mail resolve to the existing account or request.
func (srv *signupService) SubmitSignupRequest(ctx context.Context, input *usecase.SignupRequestInput) (*usecase.SignupRequestOutput, error) {
	if input == nil ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.CompanyName) == "" ||
		!srv.isEmail(entity.NormalizeEmail(input.Email)) {
		return nil, domainerrors.ErrBadInput
	}

	email := entity.NormalizeEmail(input.Email)

	account, err := srv.identity.GetUserByEmail(ctx, email)
	if err == nil {
		return &usecase.SignupRequestOutput{Code: usecase.SignupRequestAlreadyUser, UID: account.UID}, nil
	}
	if !errors.Is(err, service.ErrAccountNotFound) {
		srv.log(ctx).Error("Account lookup failed", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrAuthLookupFailed
	}

	existing, err := srv.pendingUsers.FindPendingByEmail(ctx, email)
	if err == nil {
		return &usecase.SignupRequestOutput{Code: usecase.SignupRequestAlreadyPending, RequestID: existing.ID}, nil
	}
	if !errors.Is(err, repository.ErrPendingUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up pending request")
	}

	pending := &entity.PendingUser{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Email:       email,
		CompanyName: strings.TrimSpace(input.CompanyName),
		Phone:       strings.TrimSpace(input.Phone),
		Notes:       strings.TrimSpace(input.Notes),
		Status:      entity.RequestStatusPending,
		Source:      entity.SignupSourceRequest,
		Meta:        deliverycontext.GetRequestMeta(ctx),
	}
	if err := srv.pendingUsers.Create(ctx, pending); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create pending request")
	}

	srv.log(ctx).Info("Signup request recorded",
		slog.String("request_id", pending.ID),
		slog.String("company_name", pending.CompanyName),
	)

	name := entity.FullName(pending.FirstName, pending.LastName)
	srv.publish(ctx, &entity.MailMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        srv.companyAdminEmails(ctx, pending.CompanyName),
		Subject:   "New Signup Request",
		Text: fmt.Sprintf("%s requested access to %s. Go to your dashboard to review pending users.",
			name, pending.CompanyName),
		HTML: fmt.Sprintf("<p><strong>%s</strong> requested access to <strong>%s</strong>.<br/>"+
			"Go to your users panel in the dashboard to review pending users.</p>",
			html.EscapeString(name), html.EscapeString(pending.CompanyName)),
	})

	return &usecase.SignupRequestOutput{Code: usecase.SignupRequestOK, RequestID: pending.ID}, nil
}

// companyAdminEmails resolves the admins of the named company, falling back
// to the support address when the company or its admins cannot be found.
func (srv *signupService) companyAdminEmails(ctx context.Context, companyName string) []string {
	fallback := []string{srv.supportEmail}

	company, err := srv.companies.FindByName(ctx, companyName)
	if err != nil {
		if !errors.Is(err, repository.ErrCompanyNotFound) {
			srv.log(ctx).Warn("Failed to look up company for signup request", slog.String("company_name", companyName), slog.Any("error", err))
		}

		return fallback
	}

	admins, err := srv.users.FindByCompanyAndRole(ctx, company.ID, entity.RoleAdmin)
	if err != nil {
		srv.log(ctx).Warn("Failed to look up company admins", slog.String("company_id", company.ID), slog.Any("error", err))

		return fallback
	}

	emails := make([]string, 0, len(admins))
	for _, admin := range admins {
		if srv.isEmail(admin.Email) {
			emails = append(emails, admin.Email)
		}
	}
	if len(emails) == 0 {
		return fallback
	}

	return emails
}

// publish hands a message to the notification sink, logging failures.
func (srv *signupService) publish(ctx context.Context, message *entity.MailMessage) {
	if err := srv.publisher.PublishMail(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to enqueue notification",
			slog.String("subject", message.Subject),
			slog.Any("error", err),
		)
	}
}
