package entity

// Account is an identity provider record.
type Account struct {
	UID           string
	Email         string
	EmailVerified bool
	Disabled      bool
}

// AccountToCreate holds the fields of a new identity provider account.
// An empty Password creates a password-less account.
type AccountToCreate struct {
	Email       string
	Password    string
	DisplayName string
}

// AccountClaims are the custom claims attached to an account's ID tokens.
type AccountClaims struct {
	Role      Role
	CompanyID string
}

// ToMap converts the claims to the provider's wire form.
func (c AccountClaims) ToMap() map[string]any {
	return map[string]any{
		"role":      c.Role.String(),
		"companyId": c.CompanyID,
	}
}

// IdentityToken is a verified ID token presented by a signed-in caller.
type IdentityToken struct {
	UID    string
	Email  string
	Claims map[string]any
}
