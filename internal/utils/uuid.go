package utils

import "github.com/google/uuid"

// NewID returns an opaque identifier for OAuth states and reset grants.
// Identifiers are UUIDv7 so that rows created close together sort close
// together; a random UUIDv4 is returned if v7 generation fails.
func NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
