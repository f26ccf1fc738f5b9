// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/subtle"
	"maps"
	"time"
)

// DefaultShareTokenTTL is how long a freshly issued share token stays valid.
const DefaultShareTokenTTL = 7 * 24 * time.Hour

// ResourceKind identifies which kind of shareable document a token belongs to.
type ResourceKind string

const (
	// ResourceKindPost is a single shared photo post.
	ResourceKindPost ResourceKind = "post"
	// ResourceKindCollection is a shared collection of posts.
	ResourceKindCollection ResourceKind = "collection"
)

// String returns the string representation of the ResourceKind.
func (k ResourceKind) String() string {
	return string(k)
}

// IsValid checks if the ResourceKind is a valid value.
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceKindPost, ResourceKindCollection:
		return true
	default:
		return false
	}
}

// ShareToken is one issued, time-bounded access token.
type ShareToken struct {
	Token  string
	Expiry time.Time
}

// IsValidAt reports whether the token is still alive at now.
// A token expiring exactly at now is already dead.
func (t ShareToken) IsValidAt(now time.Time) bool {
	return t.Expiry.After(now)
}

// ShareTokens is a token sequence in issuance order.
type ShareTokens []ShareToken

// ValidAt returns the tokens still alive at now, preserving order.
func (ts ShareTokens) ValidAt(now time.Time) ShareTokens {
	valid := make(ShareTokens, 0, len(ts))
	for _, t := range ts {
		if t.IsValidAt(now) {
			valid = append(valid, t)
		}
	}

	return valid
}

// LatestValidAt returns the most recently issued token that is alive at now.
func (ts ShareTokens) LatestValidAt(now time.Time) (ShareToken, bool) {
	for i := len(ts) - 1; i >= 0; i-- {
		if ts[i].IsValidAt(now) {
			return ts[i], true
		}
	}

	return ShareToken{}, false
}

// MatchAt reports whether presented equals any token that is alive at now.
func (ts ShareTokens) MatchAt(presented string, now time.Time) bool {
	if presented == "" {
		return false
	}

	matched := false
	for _, t := range ts {
		if subtle.ConstantTimeCompare([]byte(t.Token), []byte(presented)) == 1 && t.IsValidAt(now) {
			matched = true
		}
	}

	return matched
}

// ShareableResource is a post or collection that can be shared by token.
type ShareableResource struct {
	ID                      string
	Kind                    ResourceKind
	OwnerID                 string
	SharedWith              []string
	ShareableOutsideCompany bool
	Tokens                  ShareTokens
	// Attributes holds the remaining document fields untouched, so the
	// shared view can be returned without this service knowing its schema.
	Attributes map[string]any
}

// SharedView is what a valid token holder gets to see: the document
// fields and its id, never the token list itself.
func (r *ShareableResource) SharedView() map[string]any {
	view := make(map[string]any, len(r.Attributes)+1)
	maps.Copy(view, r.Attributes)
	view["id"] = r.ID

	return view
}

// IsOwnerOrSharedWith reports whether userID owns the resource or was
// explicitly granted access to it.
func (r *ShareableResource) IsOwnerOrSharedWith(userID string) bool {
	if userID == "" {
		return false
	}
	if r.OwnerID == userID {
		return true
	}
	for _, id := range r.SharedWith {
		if id == userID {
			return true
		}
	}

	return false
}
