package entity

import "time"

// RequestStatus is the review state of an access request.
type RequestStatus string

const (
	// RequestStatusPending is awaiting admin review.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusApproved was accepted by an admin.
	RequestStatusApproved RequestStatus = "approved"
	// RequestStatusRejected was declined by an admin.
	RequestStatusRejected RequestStatus = "rejected"
)

// AccessRequest records a person's request to join the company created on
// their behalf. It is the durable record of intent for admin review.
type AccessRequest struct {
	ID           string
	UID          string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Notes        string
	UserTypeHint CompanyType
	CompanyName  string
	CompanyID    string
	Status       RequestStatus
	CreatedAt    time.Time
}

// SignupSourceRequest tags pending users created by the public signup form.
const SignupSourceRequest = "signup-request"

// RequestMeta is best-effort client information captured with a request.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// PendingUser is a request to join an existing company, waiting for one of
// its admins. At most one pending entry exists per e-mail.
type PendingUser struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	CompanyName string
	Phone       string
	Notes       string
	Status      RequestStatus
	Source      string
	Meta        RequestMeta
	CreatedAt   time.Time
	LastUpdated time.Time
}
