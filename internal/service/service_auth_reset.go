package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
)

// RequestReset issues a reset code for email, replacing any outstanding
// one, and hands it to the notifier.
//
// The code is persisted before delivery. A delivery failure leaves it in
// the ledger and returns ErrNotificationFailed, so the caller may retry.
func (a *authService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrEmailNotFound
		}
		log.Err(err).Str("func", "*authService.RequestReset").Str("email", email).Msg("error looking up user")
		return fmt.Errorf("error looking up user: %w", err)
	}

	code, expiresAt, err := a.codes.Generate(a.now())
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestReset").Msg("error generating reset code")
		return fmt.Errorf("error generating reset code: %w", err)
	}

	err = a.resetCodeRepository.UpsertResetCode(ctx, models.ResetCode{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestReset").Str("email", email).Msg("error saving reset code")
		return fmt.Errorf("error saving reset code: %w", err)
	}
	ResetCodesIssued.Inc()

	if err = a.notifier.SendResetCode(ctx, email, code, expiresAt); err != nil {
		NotificationFailures.Inc()
		log.Err(err).Str("func", "*authService.RequestReset").Str("email", email).Msg("error delivering reset code")
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	log.Info().Str("func", "*authService.RequestReset").Str("email", email).Time("expires_at", expiresAt).Msg("reset code issued")
	return nil
}

// VerifyReset consumes the outstanding code of email and mints a single-use
// reset grant. A missing, mismatched or expired code yields
// ErrInvalidOrExpiredCode; a code can be verified at most once.
//
// In legacy mode no grant is minted and the returned grant carries only the email.
func (a *authService) VerifyReset(ctx context.Context, email, code string) (models.ResetGrant, error) {
	log := logger.FromContext(ctx)

	if email == "" || code == "" {
		ResetCodeVerifications.WithLabelValues(outcomeFailure).Inc()
		return models.ResetGrant{}, ErrInvalidOrExpiredCode
	}

	now := a.now()
	if err := a.resetCodeRepository.ConsumeResetCode(ctx, email, code, now); err != nil {
		if errors.Is(err, store.ErrResetCodeNotFound) {
			ResetCodeVerifications.WithLabelValues(outcomeFailure).Inc()
			return models.ResetGrant{}, ErrInvalidOrExpiredCode
		}
		log.Err(err).Str("func", "*authService.VerifyReset").Str("email", email).Msg("error consuming reset code")
		return models.ResetGrant{}, fmt.Errorf("error consuming reset code: %w", err)
	}
	ResetCodeVerifications.WithLabelValues(outcomeSuccess).Inc()

	if a.legacyPasswordReset {
		return models.ResetGrant{Email: email}, nil
	}

	grant := models.ResetGrant{
		ID:        a.newID(),
		Email:     email,
		ExpiresAt: now.Add(a.grantTTL),
	}

	token, err := utils.GenerateResetGrantToken(grant, now, a.grantSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.VerifyReset").Msg("error signing reset grant")
		return models.ResetGrant{}, fmt.Errorf("error signing reset grant: %w", err)
	}

	if err = a.resetGrantRepository.CreateResetGrant(ctx, grant); err != nil {
		log.Err(err).Str("func", "*authService.VerifyReset").Str("email", email).Msg("error saving reset grant")
		return models.ResetGrant{}, fmt.Errorf("error saving reset grant: %w", err)
	}

	grant.Token = token
	log.Info().Str("func", "*authService.VerifyReset").Str("email", email).Msg("reset code verified")
	return grant, nil
}

// ResetPassword replaces the password of email.
//
// Unless legacy mode is on, grantToken must be a valid grant issued for
// email that has not been used yet; otherwise ErrInvalidResetGrant is
// returned and nothing changes. ErrEmailNotFound is returned when no
// account was updated.
func (a *authService) ResetPassword(ctx context.Context, email, newPassword, grantToken string) error {
	log := logger.FromContext(ctx)

	if email == "" || newPassword == "" {
		PasswordResets.WithLabelValues(outcomeFailure).Inc()
		return ErrInvalidDataProvided
	}

	now := a.now()

	var grantID string
	if !a.legacyPasswordReset {
		claims, err := utils.ParseResetGrantToken(grantToken, a.grantSignKey, now)
		if err != nil || claims.Email() != email {
			PasswordResets.WithLabelValues(outcomeFailure).Inc()
			log.Info().Str("func", "*authService.ResetPassword").Str("email", email).Msg("rejected reset grant")
			return ErrInvalidResetGrant
		}
		grantID = claims.GrantID()
	}

	passwordHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		PasswordResets.WithLabelValues(outcomeFailure).Inc()
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !a.legacyPasswordReset {
		if _, err = a.resetGrantRepository.ConsumeResetGrant(ctx, grantID, email, now); err != nil {
			PasswordResets.WithLabelValues(outcomeFailure).Inc()
			if errors.Is(err, store.ErrResetGrantNotFound) {
				return ErrInvalidResetGrant
			}
			log.Err(err).Str("func", "*authService.ResetPassword").Str("email", email).Msg("error consuming reset grant")
			return fmt.Errorf("error consuming reset grant: %w", err)
		}
	}

	updated, err := a.userRepository.UpdatePasswordHash(ctx, email, passwordHash)
	if err != nil {
		PasswordResets.WithLabelValues(outcomeFailure).Inc()
		log.Err(err).Str("func", "*authService.ResetPassword").Str("email", email).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}
	if updated == 0 {
		PasswordResets.WithLabelValues(outcomeFailure).Inc()
		return ErrEmailNotFound
	}

	PasswordResets.WithLabelValues(outcomeSuccess).Inc()
	log.Info().Str("func", "*authService.ResetPassword").Str("email", email).Msg("password reset")
	return nil
}
