// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the service.
//
// [Notifier] delivers password-reset codes out of band (SMTP, or the log in
// development). [IdentityProvider] bridges to a third-party OAuth2 provider
// for federated signup and login; the package ships a Google implementation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-course-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Notifier delivers reset codes to the owner of an email address.
// Implementations must never expose the code anywhere else.
type Notifier interface {
	// SendResetCode delivers code, valid until expiresAt, to email.
	SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error
}

// IdentityProvider is an OAuth2 authorization-code identity provider.
type IdentityProvider interface {
	// AuthCodeURL returns the provider consent page URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for tokens and returns the
	// authenticated user's profile.
	Exchange(ctx context.Context, code string) (models.ExternalIdentity, error)
}
