package model

import "displaygram/internal/domain/entity"

// Access request and pending user fields.
const (
	FieldEmail  = "email"
	FieldStatus = "status"
)

// AccessRequestToDoc encodes an access request, including its own id.
func AccessRequestToDoc(r *entity.AccessRequest, ts any) map[string]any {
	return map[string]any{
		FieldID:          r.ID,
		"uid":            r.UID,
		FieldEmail:       r.Email,
		"firstName":      r.FirstName,
		"lastName":       r.LastName,
		"phone":          r.Phone,
		"notes":          r.Notes,
		"userTypeHint":   string(r.UserTypeHint),
		FieldCompanyName: r.CompanyName,
		FieldCompanyID:   r.CompanyID,
		FieldStatus:      string(r.Status),
		FieldCreatedAt:   timeOr(r.CreatedAt, ts),
	}
}

// optional stores blank optional text as null, the way signup forms submit it.
func optional(s string) any {
	if s == "" {
		return nil
	}

	return s
}

// PendingUserToDoc encodes a pending signup.
func PendingUserToDoc(p *entity.PendingUser, ts any) map[string]any {
	return map[string]any{
		"firstName":      p.FirstName,
		"lastName":       p.LastName,
		FieldEmail:       p.Email,
		FieldCompanyName: p.CompanyName,
		"phone":          optional(p.Phone),
		"notes":          optional(p.Notes),
		FieldStatus:      string(p.Status),
		"source":         p.Source,
		FieldCreatedAt:   timeOr(p.CreatedAt, ts),
		FieldLastUpdated: timeOr(p.LastUpdated, ts),
		"meta": map[string]any{
			"ip":        optional(p.Meta.IP),
			"userAgent": optional(p.Meta.UserAgent),
		},
	}
}

// DocToPendingUser decodes a pending signup document.
func DocToPendingUser(id string, data map[string]any) *entity.PendingUser {
	meta := getMap(data, "meta")

	return &entity.PendingUser{
		ID:          id,
		FirstName:   getString(data, "firstName"),
		LastName:    getString(data, "lastName"),
		Email:       getString(data, FieldEmail),
		CompanyName: getString(data, FieldCompanyName),
		Phone:       getString(data, "phone"),
		Notes:       getString(data, "notes"),
		Status:      entity.RequestStatus(getString(data, FieldStatus)),
		Source:      getString(data, "source"),
		Meta: entity.RequestMeta{
			IP:        getString(meta, "ip"),
			UserAgent: getString(meta, "userAgent"),
		},
		CreatedAt:   getTime(data, FieldCreatedAt),
		LastUpdated: getTime(data, FieldLastUpdated),
	}
}
