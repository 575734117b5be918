// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier assigned by the store on creation.
	UserID int64 `json:"user_id"`

	// Nickname is the display name of the user. It is not required to be unique.
	Nickname string `json:"nickname"`

	// Email is the globally unique, case-sensitive account identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt output of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// ExternalIdentity is the profile returned by a third-party identity
// provider after a successful authorization-code exchange.
type ExternalIdentity struct {
	// Subject is the provider-side stable user identifier.
	Subject string

	// Email is the verified email reported by the provider.
	Email string

	// Name is the display name reported by the provider.
	Name string

	// AccessToken and RefreshToken are the provider tokens obtained by the exchange.
	AccessToken  string
	RefreshToken string
}
