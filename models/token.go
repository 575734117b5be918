package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// ResetGrantAudience is the "aud" claim carried by every reset grant token.
// Tokens minted for any other purpose are rejected by the reset flow.
const ResetGrantAudience = "password-reset"

// ResetGrantToken is the claim set of a signed reset grant.
//
// The subject ("sub") holds the email the grant was issued for and the
// token ID ("jti") holds the grant's primary key in the grant ledger.
type ResetGrantToken struct {
	jwt.RegisteredClaims
}

// Email returns the email the grant authorizes.
func (t *ResetGrantToken) Email() string {
	return t.Subject
}

// GrantID returns the grant ledger key.
func (t *ResetGrantToken) GrantID() string {
	return t.ID
}
