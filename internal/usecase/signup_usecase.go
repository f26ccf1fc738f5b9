package usecase

import (
	"context"
)

// CompanySignupInput is a request to create a new company for its first user.
type CompanySignupInput struct {
	FirstName    string
	LastName     string
	WorkEmail    string
	CompanyName  string
	UserTypeHint string
	Phone        string
	Notes        string
	Password     string
}

// CompanySignupOutput identifies the records created for a company signup.
type CompanySignupOutput struct {
	CompanyID string
	RequestID string
}

// SignupRequestCode tells the caller what a signup request resolved to.
type SignupRequestCode string

const (
	// SignupRequestOK means a new pending request was recorded.
	SignupRequestOK SignupRequestCode = "OK"
	// SignupRequestAlreadyUser means the e-mail already has an account.
	SignupRequestAlreadyUser SignupRequestCode = "ALREADY_USER"
	// SignupRequestAlreadyPending means the e-mail already has a pending request.
	SignupRequestAlreadyPending SignupRequestCode = "ALREADY_PENDING"
)

// SignupRequestInput is a request to join an existing company.
type SignupRequestInput struct {
	FirstName   string
	LastName    string
	Email       string
	CompanyName string
	Phone       string
	Notes       string
}

// SignupRequestOutput is the outcome of a signup request.
// UID is set for ALREADY_USER, RequestID otherwise.
type SignupRequestOutput struct {
	Code      SignupRequestCode
	UID       string
	RequestID string
}

// SignupUsecase defines the interface for self-service signup use cases
type SignupUsecase interface {
	// ReserveAndCreate creates a provisional company, its access request and a
	// pending account, or rejects the signup when the company already exists.
	ReserveAndCreate(ctx context.Context, input *CompanySignupInput) (*CompanySignupOutput, error)

	// SubmitSignupRequest records a request to join an existing company and
	// notifies its admins.
	SubmitSignupRequest(ctx context.Context, input *SignupRequestInput) (*SignupRequestOutput, error)
}
