package ports

import "time"

// PasswordHasher derives salted one-way hashes and compares plaintext against
// them in constant time.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs and verifies stateless session tokens.
type TokenIssuer interface {
	Issue(ttl time.Duration) (string, error)
	Verify(token string) error
}
