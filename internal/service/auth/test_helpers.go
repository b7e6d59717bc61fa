package auth

import "time"

// NewTestTokenService creates a token service with a fixed secret and an
// injectable clock. Intended for tests that need deterministic issue and
// expiry times.
func NewTestTokenService(secret string, lifetime time.Duration, timeFunc func() time.Time) TokenService {
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
