package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and verifying the signed
// session tokens that carry a user's email claim.
type TokenService interface {
	// Issue signs the given claim set and returns the compact token
	// string. The claims must contain a non-empty "email" entry; any
	// additional entries are signed as-is. Expiry is fixed by the
	// configured token lifetime.
	Issue(ctx context.Context, claims map[string]interface{}) (string, error)

	// Verify validates the token string and returns the original claims.
	// Fails with ErrInvalidToken or ErrExpiredToken when the token is
	// malformed, carries a bad signature, or has expired.
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified payload of a session token.
type Claims struct {
	// Email identifies the caller; every token carries it.
	Email string

	// Raw holds the full original claim set, including email and the
	// registered time claims.
	Raw map[string]interface{}

	// Standard time claims
	IssuedAt  time.Time
	ExpiresAt time.Time
}
