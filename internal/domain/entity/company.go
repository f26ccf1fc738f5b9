package entity

import (
	"strings"
	"time"
)

// CompanyType is the business category a company signs up under.
type CompanyType string

const (
	// CompanyTypeDistributor is the default company type.
	CompanyTypeDistributor CompanyType = "distributor"
	// CompanyTypeSupplier is a supplier company.
	CompanyTypeSupplier CompanyType = "supplier"
)

// IsValid checks if the CompanyType is a valid value.
func (t CompanyType) IsValid() bool {
	switch t {
	case CompanyTypeDistributor, CompanyTypeSupplier:
		return true
	default:
		return false
	}
}

const (
	// CompanyTierFree is the tier every self-served company starts on.
	CompanyTierFree = "free"
	// CompanyAccessActive marks a company whose members may sign in.
	CompanyAccessActive = "active"
)

// CompanyLimits caps what a company may do on its tier.
type CompanyLimits struct {
	MaxUsers       int
	MaxConnections int
}

// DefaultLimits returns the free-tier limits for a company type.
func DefaultLimits(t CompanyType) CompanyLimits {
	maxUsers := 1
	if t == CompanyTypeDistributor {
		maxUsers = 5
	}

	return CompanyLimits{MaxUsers: maxUsers, MaxConnections: 1}
}

// Contact is a person reachable on behalf of a company.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Company is a tenant of the application.
type Company struct {
	ID             string
	CompanyName    string
	NormalizedName string // Unique key, see NormalizeCompanyName.
	CompanyType    CompanyType
	Tier           string
	Verified       bool
	Limits         CompanyLimits
	AccessStatus   string
	PrimaryContact Contact
	CreatedAt      time.Time
	LastUpdated    time.Time
}

// CompanyReservation is the permanent lock record guaranteeing one company
// per normalized name. It is written once, in the same transaction as the
// company, and never updated or deleted.
type CompanyReservation struct {
	NormalizedName string
	CompanyID      string
}

// NormalizeCompanyName returns the canonical uniqueness key of a company name.
func NormalizeCompanyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeEmail returns the canonical form of an e-mail address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewProvisionalCompany builds an unverified free-tier company for a
// self-served signup. The ID is left for the store to assign.
func NewProvisionalCompany(companyName string, companyType CompanyType, contact Contact) *Company {
	if !companyType.IsValid() {
		companyType = CompanyTypeDistributor
	}

	return &Company{
		CompanyName:    strings.TrimSpace(companyName),
		NormalizedName: NormalizeCompanyName(companyName),
		CompanyType:    companyType,
		Tier:           CompanyTierFree,
		Verified:       false,
		Limits:         DefaultLimits(companyType),
		AccessStatus:   CompanyAccessActive,
		PrimaryContact: contact,
	}
}
