package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"share": map[string]any{
			"tokenTTL": "168h",
			"baseUrl":  "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"identity": map[string]any{
			"devSigningKey": "",
		},
		"http": map[string]any{
			"cors": map[string]any{
				"allowOrigins": []any{"*"},
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SHARE_TOKENTTL", want: "share.tokenTTL"},
		{envKey: "SHARE_BASEURL", want: "share.baseUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "IDENTITY_DEVSIGNINGKEY", want: "identity.devSigningKey"},
		{envKey: "HTTP_CORS_ALLOWORIGINS", want: "http.cors.allowOrigins"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Share)
	assert.Equal(t, 7*24*time.Hour, cfg.Share.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSupportEmail, cfg.Signup.SupportEmail)
	assert.Equal(t, time.Hour, cfg.Identity.DevTokenTTL)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Mail)
	assert.NotNil(t, cfg.QRCode)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Share:  &ShareConfig{TokenTTL: time.Hour, BaseURL: "https://app.example.com"},
		Signup: &SignupConfig{SupportEmail: "help@example.com"},
	}
	cfg.HTTP.CORS.AllowOrigins = []string{"https://app.example.com"}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Share.TokenTTL)
	assert.Equal(t, "https://app.example.com", cfg.Share.BaseURL)
	assert.Equal(t, "help@example.com", cfg.Signup.SupportEmail)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.CORS.AllowOrigins)
}
