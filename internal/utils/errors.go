package utils

import "errors"

var (
	// ErrInvalidPassword is returned by PasswordHasher.Hash for empty
	// passwords and passwords longer than bcrypt's 72-byte input limit.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidGrantToken is returned when a reset grant token fails
	// signature, audience, expiry or claim checks.
	ErrInvalidGrantToken = errors.New("invalid reset grant token")
)
