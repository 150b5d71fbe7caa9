package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted hashes and
// verifies login attempts against them. It knows nothing about users,
// storage or transport.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password. The result is
	// safe to persist.
	Hash(password string) (string, error)

	// Verify compares a previously stored hash against a login attempt.
	// Returns [ErrPasswordMismatch] when the password does not match.
	Verify(hash, password string) error
}
