package model

import (
	"time"

	"displaygram/internal/domain/entity"
)

// FieldExternalAPIKeys holds the key list of an apiKeys/{companyId} document.
const FieldExternalAPIKeys = "externalApiKeys"

// APIKeysToDoc encodes a company's key list.
func APIKeysToDoc(keys entity.ExternalAPIKeys) []any {
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]any{
			"name":      k.Name,
			"env":       string(k.Env),
			"key":       k.Key,
			"lastFour":  k.LastFour,
			"createdAt": k.CreatedAt.UTC(),
			"updatedAt": k.UpdatedAt.UTC(),
		})
	}

	return out
}

// DocToAPIKeys decodes the key list of an apiKeys document.
func DocToAPIKeys(data map[string]any) entity.ExternalAPIKeys {
	items := getMaps(data, FieldExternalAPIKeys)
	keys := make(entity.ExternalAPIKeys, 0, len(items))
	for _, m := range items {
		keys = append(keys, entity.ExternalAPIKey{
			Name:      getString(m, "name"),
			Env:       entity.APIKeyEnv(getString(m, "env")),
			Key:       getString(m, "key"),
			LastFour:  getString(m, "lastFour"),
			CreatedAt: getTime(m, "createdAt"),
			UpdatedAt: getTime(m, "updatedAt"),
		})
	}

	return keys
}

// APIKeysDoc builds the apiKeys document body.
func APIKeysDoc(keys entity.ExternalAPIKeys, now time.Time) map[string]any {
	return map[string]any{
		FieldExternalAPIKeys: APIKeysToDoc(keys),
		FieldUpdatedAt:       now.UTC(),
	}
}
