package entity

import "time"

// DefaultExternalAPIName is the integration the key endpoints manage when
// the caller does not name one.
const DefaultExternalAPIName = "galloApiKey"

// APIKeyEnv selects which upstream environment a key is for.
type APIKeyEnv string

const (
	// APIKeyEnvProd is the production upstream.
	APIKeyEnvProd APIKeyEnv = "prod"
	// APIKeyEnvDev is the development upstream.
	APIKeyEnvDev APIKeyEnv = "dev"
)

// IsValid checks if the APIKeyEnv is a valid value.
func (e APIKeyEnv) IsValid() bool {
	return e == APIKeyEnvProd || e == APIKeyEnvDev
}

// ExternalAPIKey is a company's credential for a third-party API.
type ExternalAPIKey struct {
	Name      string
	Env       APIKeyEnv
	Key       string
	LastFour  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExternalAPIKeys is the key list stored per company.
type ExternalAPIKeys []ExternalAPIKey

// Find returns the key registered for (name, env).
func (ks ExternalAPIKeys) Find(name string, env APIKeyEnv) (ExternalAPIKey, bool) {
	for _, k := range ks {
		if k.Name == name && k.Env == env {
			return k, true
		}
	}

	return ExternalAPIKey{}, false
}

// Without returns the list minus the (name, env) entry.
func (ks ExternalAPIKeys) Without(name string, env APIKeyEnv) ExternalAPIKeys {
	out := make(ExternalAPIKeys, 0, len(ks))
	for _, k := range ks {
		if k.Name == name && k.Env == env {
			continue
		}
		out = append(out, k)
	}

	return out
}

// LastFour returns the trailing four characters of a key for display.
func LastFour(key string) string {
	runes := []rune(key)
	if len(runes) <= 4 {
		return key
	}

	return string(runes[len(runes)-4:])
}

// APIKeyStatus describes a stored key without revealing it.
type APIKeyStatus struct {
	Exists    bool       `json:"exists"`
	LastFour  string     `json:"lastFour,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
