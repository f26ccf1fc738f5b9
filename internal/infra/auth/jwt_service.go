// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"displaygram/config"
	"displaygram/internal/domain/service"
	"displaygram/internal/errors"
)

// devTokenIssuer identifies ID tokens signed by this service rather than the identity provider.
const devTokenIssuer = "displaygram-dev"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	signingKey []byte        // Secret key for signing ID tokens.
	ttl        time.Duration // Time-to-live for ID tokens.
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.Identity.DevSigningKey) == "" {
		return nil, errors.New("identity dev signing key must be provided")
	}

	ttl := cfg.Identity.DevTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		signingKey: []byte(cfg.Identity.DevSigningKey),
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// GenerateIDToken signs an ID token for uid carrying the account's custom claims.
func (s *jwtService) GenerateIDToken(uid, email string, claims map[string]any) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.DevIDTokenClaims{
		Email:  email,
		Claims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    devTokenIssuer,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "sign id token")
	}

	return signed, nil
}

// ValidateIDToken checks the signature, issuer and expiry of a token string.
func (s *jwtService) ValidateIDToken(tokenString string) (*service.DevIDTokenClaims, error) {
	claims := &service.DevIDTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	},
		jwt.WithIssuer(devTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidIDToken, "%v", err)
	}
	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidIDToken, "missing subject")
	}

	return claims, nil
}

// TokenTTL returns the configured lifetime of ID tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
