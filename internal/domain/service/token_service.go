package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DevIDTokenClaims are the claims of a locally signed development ID token.
type DevIDTokenClaims struct {
	Email  string         `json:"email,omitempty"`
	Claims map[string]any `json:"claims,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for signing and checking development ID tokens.
// Production ID tokens are issued and verified by the identity provider itself.
type TokenService interface {
	// GenerateIDToken signs an ID token for uid.
	GenerateIDToken(uid, email string, claims map[string]any) (string, error)

	// ValidateIDToken checks the signature and expiry of a token string.
	ValidateIDToken(tokenString string) (*DevIDTokenClaims, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}
