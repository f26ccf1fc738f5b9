package model

import (
	"maps"

	"displaygram/internal/domain/entity"
)

// Shareable resource fields.
const (
	FieldTokens                    = "tokens"
	FieldTokenValue                = "token"
	FieldTokenExpiry               = "expiry"
	FieldOwnerID                   = "ownerId"
	FieldSharedWith                = "sharedWith"
	FieldIsShareableOutsideCompany = "isShareableOutsideCompany"
)

// Posts written before token sequences carry token.sharedToken and
// token.tokenExpiry; collections carry shareToken and tokenExpiry.
const (
	FieldLegacyPostToken   = "token"
	FieldLegacySharedToken = "sharedToken"
	FieldLegacyShareToken  = "shareToken"
	FieldLegacyTokenExpiry = "tokenExpiry"
)

// DocToShareableResource decodes a post or collection document.
// A legacy single token is prepended to the sequence as the oldest entry.
func DocToShareableResource(kind entity.ResourceKind, id string, data map[string]any) *entity.ShareableResource {
	resource := &entity.ShareableResource{
		ID:                      id,
		Kind:                    kind,
		OwnerID:                 getString(data, FieldOwnerID),
		SharedWith:              getStrings(data, FieldSharedWith),
		ShareableOutsideCompany: getBool(data, FieldIsShareableOutsideCompany),
	}

	tokens := make(entity.ShareTokens, 0)
	if legacy, ok := legacyToken(kind, data); ok {
		tokens = append(tokens, legacy)
	}
	for _, m := range getMaps(data, FieldTokens) {
		token := getString(m, FieldTokenValue)
		if token == "" {
			continue
		}
		tokens = append(tokens, entity.ShareToken{Token: token, Expiry: getTime(m, FieldTokenExpiry)})
	}
	resource.Tokens = tokens

	attributes := maps.Clone(data)
	if attributes == nil {
		attributes = map[string]any{}
	}
	for _, f := range []string{FieldID, FieldTokens, FieldLegacyShareToken, FieldLegacyTokenExpiry} {
		delete(attributes, f)
	}
	if kind == entity.ResourceKindPost {
		delete(attributes, FieldLegacyPostToken)
	}
	resource.Attributes = attributes

	return resource
}

func legacyToken(kind entity.ResourceKind, data map[string]any) (entity.ShareToken, bool) {
	var token entity.ShareToken
	switch kind {
	case entity.ResourceKindPost:
		nested := getMap(data, FieldLegacyPostToken)
		if nested == nil {
			return token, false
		}
		token.Token = getString(nested, FieldLegacySharedToken)
		token.Expiry = getTime(nested, FieldLegacyTokenExpiry)
	case entity.ResourceKindCollection:
		token.Token = getString(data, FieldLegacyShareToken)
		token.Expiry = getTime(data, FieldLegacyTokenExpiry)
	}

	return token, token.Token != ""
}

// LegacyTokenFields lists the single-token fields of a kind. They are
// cleared whenever the token sequence is rewritten, since the sequence
// then already carries the folded legacy token.
func LegacyTokenFields(kind entity.ResourceKind) []string {
	if kind == entity.ResourceKindPost {
		return []string{FieldLegacyPostToken}
	}

	return []string{FieldLegacyShareToken, FieldLegacyTokenExpiry}
}

// ShareTokensToDoc encodes a token sequence in issuance order.
func ShareTokensToDoc(tokens entity.ShareTokens) []any {
	out := make([]any, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, map[string]any{
			FieldTokenValue:  t.Token,
			FieldTokenExpiry: t.Expiry.UTC(),
		})
	}

	return out
}
