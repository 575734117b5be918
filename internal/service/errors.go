// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateIdentity = errors.New("user with this nickname and email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailNotFound        = errors.New("email not found")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrNotificationFailed   = errors.New("reset code notification failed")
	ErrInvalidResetGrant    = errors.New("invalid or already used reset grant")

	ErrProviderError          = errors.New("identity provider error")
	ErrUnknownOAuthState      = errors.New("unknown oauth state")
	ErrFederatedLoginDisabled = errors.New("federated login is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
