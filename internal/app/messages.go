// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// course-auth HTTP handlers and middleware.
//
// Msg* constants are the human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the wording consistent across the
// API and lets clients match on them.
package app

// Success messages.
const (
	MsgWelcome              = "Welcome to the API!"
	MsgDatabaseOK           = "Database connection successful"
	MsgUserCreated          = "User created successfully"
	MsgLoginSuccessful      = "Login successful"
	MsgResetCodeGenerated   = "Reset code generated"
	MsgCodeVerified         = "Code verified successfully"
	MsgPasswordResetSuccess = "Password reset successfully"
	MsgCourseAdded          = "Course added successfully"
)

// Error messages.
const (
	// MsgInvalidDataProvided is returned when a required field is empty or
	// the password cannot be hashed.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidRequest is returned when the request body or query cannot
	// be decoded.
	MsgInvalidRequest = "Invalid request"

	MsgUserAlreadyExists  = "User already exists"
	MsgEmailAlreadyExists = "Email already exists"

	// MsgInvalidCredentials does not say whether the email or the password
	// was wrong.
	MsgInvalidCredentials = "Invalid credentials"

	MsgEmailNotFound        = "Email not found"
	MsgInvalidOrExpiredCode = "Invalid or expired code"
	MsgInvalidResetToken    = "Invalid or expired reset token"
	MsgNotificationFailed   = "Reset code could not be delivered"
	MsgProviderError        = "Identity provider error"
	MsgUnknownState         = "Unknown state"
	MsgDatabaseUnavailable  = "Database unavailable"
	MsgDatabaseFailed       = "Database connection failed"
)
