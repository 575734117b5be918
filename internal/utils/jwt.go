package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateResetGrantToken signs grant as an HMAC-SHA256 JWT.
//
// The token carries the following claims:
//   - Audience  (aud): models.ResetGrantAudience
//   - Subject   (sub): the email the grant was issued for
//   - ID        (jti): the grant ledger key
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): grant.ExpiresAt
//
// Example usage:
//
//	signed, err := utils.GenerateResetGrantToken(grant, time.Now(), "secret")
func GenerateResetGrantToken(grant models.ResetGrant, issuedAt time.Time, signKey string) (string, error) {
	if grant.ID == "" || grant.Email == "" || grant.ExpiresAt.IsZero() || signKey == "" {
		return "", errors.New("invalid params for generating reset grant token")
	}

	claims := &models.ResetGrantToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{models.ResetGrantAudience},
			Subject:   grant.Email,
			ID:        grant.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(grant.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing reset grant token: %w", err)
	}

	return signed, nil
}

// ParseResetGrantToken validates tokenString and returns its claims.
//
// Validation includes:
//   - HS256 signature verification with signKey
//   - audience equal to models.ResetGrantAudience
//   - expiration relative to now
//   - presence of subject and jti
//
// Every failure wraps ErrInvalidGrantToken.
func ParseResetGrantToken(tokenString, signKey string, now time.Time) (*models.ResetGrantToken, error) {
	claims := &models.ResetGrantToken{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(models.ResetGrantAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrantToken, err)
	}

	if claims.Email() == "" || claims.GrantID() == "" {
		return nil, fmt.Errorf("%w: missing subject or token id", ErrInvalidGrantToken)
	}

	return claims, nil
}
