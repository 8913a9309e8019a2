package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the access tokens.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: there is no server-side revocation, so a leaked token
// stays valid until its natural expiry.
type TokenService interface {
	// GenerateToken creates a signed access token embedding the user's identity
	// with an absolute expiry of now + AccessTokenTTL().
	GenerateToken(userID int64) (string, error)

	// ValidateToken checks signature integrity and expiry. It returns an error
	// for malformed, unsigned, tampered or expired tokens; it never panics.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured validity window for issued tokens.
	AccessTokenTTL() time.Duration
}
