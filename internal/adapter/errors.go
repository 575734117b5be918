package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrRateLimited         = errors.New("provider rate limit exceeded")
	ErrProviderUnavailable = errors.New("provider temporarily unavailable")

	// ErrExchangeFailed is returned when the authorization code could not be
	// traded for tokens.
	ErrExchangeFailed = errors.New("authorization code exchange failed")

	// ErrIncompleteProfile is returned when the provider profile lacks a
	// verified email.
	ErrIncompleteProfile = errors.New("identity provider returned an incomplete profile")

	// ErrDeliveryFailed is returned when a notification could not be handed
	// to the delivery channel.
	ErrDeliveryFailed = errors.New("notification delivery failed")
)
