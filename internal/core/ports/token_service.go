package ports

import "github.com/eventhub/events-api/internal/core/domain"

// TokenService issues and verifies signed session tokens. Verification is a
// pure function of the token, the signing key, and the clock; no state is
// consulted.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	// Verify returns the embedded claims, or domain.ErrInvalidToken when the
	// token is malformed, carries a bad signature, or has expired.
	Verify(token string) (*domain.Claims, error)
}

// PasswordHasher produces and checks one-way salted password digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest
	// verifies false; it never panics or returns an error.
	Verify(plaintext, digest string) bool
}
