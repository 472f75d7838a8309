// Package crypto holds the credential hashing used by the authentication
// service.
package crypto

// PasswordHasher hashes plain-text passwords for storage and verifies login
// attempts against the stored hash.
type PasswordHasher interface {
	// Hash derives a storable hash from a plain-text password.
	Hash(password string) (string, error)

	// Compare checks a plain-text password against a stored hash. Returns
	// [ErrPasswordMismatch] when they do not match.
	Compare(hash, password string) error
}
