// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OAuthState is the completion status of a federated login attempt.
type OAuthState string

const (
	OAuthStatePending OAuthState = "pending"
	OAuthStateSuccess OAuthState = "success"
	OAuthStateError   OAuthState = "error"
)

// OAuthStatus is what a client polls for while a federated login completes.
type OAuthStatus struct {
	State        string     `json:"state"`
	Status       OAuthState `json:"status"`
	UserID       int64      `json:"user_id,omitempty"`
	AccessToken  string     `json:"access_token,omitempty"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	Error        string     `json:"error,omitempty"`

	// ExpiresAt is set by the state store when the entry is written.
	ExpiresAt time.Time `json:"-"`
}

// FederatedLogin is the result of a successful federated login.
type FederatedLogin struct {
	UserID       int64
	AccessToken  string
	RefreshToken string
}
