// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResetCode is an outstanding password-reset code. At most one exists per email.
type ResetCode struct {
	// Email identifies the account the code was issued for.
	Email string

	// Code is a 6-digit decimal string in the range 100000..999999.
	Code string

	// ExpiresAt is the instant after which the code is no longer accepted.
	ExpiresAt time.Time
}

// ResetGrant is the single-use proof of a successful code verification.
// ResetPassword consumes it.
type ResetGrant struct {
	// ID is the grant identifier, also used as the token's jti claim.
	ID string

	// Email is the account the grant authorizes a password change for.
	Email string

	// ExpiresAt bounds the grant's lifetime.
	ExpiresAt time.Time

	// Token is the signed representation handed to the client.
	// It is never persisted.
	Token string
}
