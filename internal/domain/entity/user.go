package entity

import (
	"strings"
	"time"
)

// UserProfile is the application-side profile document of an account,
// keyed by the identity provider's uid.
type UserProfile struct {
	UID       string
	Email     string
	FirstName string
	LastName  string
	CompanyID string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCompany reports whether the profile is attached to a company.
func (u *UserProfile) HasCompany() bool {
	return strings.TrimSpace(u.CompanyID) != ""
}

// SameCompany reports whether both profiles belong to the same company.
func (u *UserProfile) SameCompany(other *UserProfile) bool {
	if u == nil || other == nil || !u.HasCompany() || !other.HasCompany() {
		return false
	}

	return u.CompanyID == other.CompanyID
}

// FullName joins first and last name.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}
