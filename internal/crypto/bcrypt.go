// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [PasswordHasher.Verify] when the
// supplied password does not correspond to the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// bcryptHasher is the private implementation of [PasswordHasher] on top of
// golang.org/x/crypto/bcrypt. bcrypt embeds a per-hash random salt, so no
// extra salt management is needed.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt work
// factor. A non-positive cost selects the library default.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("error verifying password: %w", err)
	}

	return nil
}
