package model

import (
	"crypto/sha256"
	"encoding/hex"

	"displaygram/internal/domain/entity"
)

// Company fields.
const (
	FieldCompanyName    = "companyName"
	FieldNormalizedName = "normalizedName"
	FieldCompanyID      = "companyId"
	FieldCreatedAt      = "createdAt"
	FieldUpdatedAt      = "updatedAt"
	FieldLastUpdated    = "lastUpdated"
)

// CompanyToDoc encodes a company. Unset timestamps are written as ts.
func CompanyToDoc(c *entity.Company, ts any) map[string]any {
	return map[string]any{
		FieldCompanyName:    c.CompanyName,
		FieldNormalizedName: c.NormalizedName,
		"companyType":       string(c.CompanyType),
		"tier":              c.Tier,
		"verified":          c.Verified,
		"limits": map[string]any{
			"maxUsers":       c.Limits.MaxUsers,
			"maxConnections": c.Limits.MaxConnections,
		},
		"accessStatus": c.AccessStatus,
		"primaryContact": map[string]any{
			"name":  c.PrimaryContact.Name,
			"email": c.PrimaryContact.Email,
			"phone": c.PrimaryContact.Phone,
		},
		FieldCreatedAt:   timeOr(c.CreatedAt, ts),
		FieldLastUpdated: timeOr(c.LastUpdated, ts),
	}
}

// DocToCompany decodes a company document.
func DocToCompany(id string, data map[string]any) *entity.Company {
	limits := getMap(data, "limits")
	contact := getMap(data, "primaryContact")

	return &entity.Company{
		ID:             id,
		CompanyName:    getString(data, FieldCompanyName),
		NormalizedName: getString(data, FieldNormalizedName),
		CompanyType:    entity.CompanyType(getString(data, "companyType")),
		Tier:           getString(data, "tier"),
		Verified:       getBool(data, "verified"),
		Limits: entity.CompanyLimits{
			MaxUsers:       getInt(limits, "maxUsers"),
			MaxConnections: getInt(limits, "maxConnections"),
		},
		AccessStatus: getString(data, "accessStatus"),
		PrimaryContact: entity.Contact{
			Name:  getString(contact, "name"),
			Email: getString(contact, "email"),
			Phone: getString(contact, "phone"),
		},
		CreatedAt:   getTime(data, FieldCreatedAt),
		LastUpdated: getTime(data, FieldLastUpdated),
	}
}

// ReservationKey derives the document id of a reservation. Company names may
// contain characters that are not legal in a document id, so the id is a digest.
func ReservationKey(normalizedName string) string {
	sum := sha256.Sum256([]byte(normalizedName))

	return hex.EncodeToString(sum[:])
}

// ReservationToDoc encodes a reservation.
func ReservationToDoc(r *entity.CompanyReservation) map[string]any {
	return map[string]any{
		FieldNormalizedName: r.NormalizedName,
		FieldCompanyID:      r.CompanyID,
	}
}

// DocToReservation decodes a reservation document looked up by normalizedName.
func DocToReservation(normalizedName string, data map[string]any) *entity.CompanyReservation {
	if stored := getString(data, FieldNormalizedName); stored != "" {
		normalizedName = stored
	}

	return &entity.CompanyReservation{
		NormalizedName: normalizedName,
		CompanyID:      getString(data, FieldCompanyID),
	}
}
