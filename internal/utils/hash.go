package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit. Longer inputs would be silently
// truncated by older implementations and are rejected by x/crypto.
const maxPasswordBytes = 72

// PasswordHasher derives and checks salted bcrypt password hashes.
// The zero value is not usable; construct it with NewPasswordHasher.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher using the given bcrypt cost.
// Costs outside [bcrypt.MinCost, bcrypt.MaxCost] fall back to
// bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt encoding of password with a fresh random salt,
// so two calls with the same input produce different strings.
//
// Returns ErrInvalidPassword for empty passwords and passwords longer than
// 72 bytes.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" || len(password) > maxPasswordBytes {
		return "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes never match.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
