package entity

import (
	"slices"
	"strings"
)

// Role represents the type of role a user can have inside a company.
type Role string

const (
	// RolePending is assigned at signup until an admin approves the account.
	RolePending Role = "pending"
	// RoleMember is a regular company member.
	RoleMember Role = "member"
	// RoleAdmin manages a company's users and integrations.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin is a platform-level administrator.
	RoleSuperAdmin Role = "super-admin"
	// RoleOwner owns the company account.
	RoleOwner Role = "owner"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// companyAdminRoles may manage company-wide settings.
var companyAdminRoles = []Role{RoleAdmin, RoleSuperAdmin, RoleOwner}

// IsCompanyAdmin reports whether the role may manage company settings.
// Stored roles are compared case-insensitively.
func (r Role) IsCompanyAdmin() bool {
	return slices.Contains(companyAdminRoles, Role(strings.ToLower(strings.TrimSpace(string(r)))))
}
