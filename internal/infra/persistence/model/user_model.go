package model

import "displaygram/internal/domain/entity"

// User profile fields.
const (
	FieldUID  = "uid"
	FieldRole = "role"
)

// UserToMergeDoc encodes the fields of a profile upsert. createdAt is left
// out; drivers add it only when the document is new.
func UserToMergeDoc(u *entity.UserProfile, ts any) map[string]any {
	return map[string]any{
		FieldUID:       u.UID,
		FieldEmail:     u.Email,
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		FieldCompanyID: u.CompanyID,
		FieldRole:      u.Role.String(),
		FieldUpdatedAt: timeOr(u.UpdatedAt, ts),
	}
}

// DocToUser decodes a user profile document.
func DocToUser(uid string, data map[string]any) *entity.UserProfile {
	return &entity.UserProfile{
		UID:       uid,
		Email:     getString(data, FieldEmail),
		FirstName: getString(data, "firstName"),
		LastName:  getString(data, "lastName"),
		CompanyID: getString(data, FieldCompanyID),
		Role:      entity.Role(getString(data, FieldRole)),
		CreatedAt: getTime(data, FieldCreatedAt),
		UpdatedAt: getTime(data, FieldUpdatedAt),
	}
}
