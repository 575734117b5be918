package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/models"
)

const placeholderPasswordBytes = 32

// FederatedLogin exchanges authCode with the identity provider and returns
// the matching account, creating one on first login. Accounts created here
// get a random password that nobody knows; the owner can set a real one
// through the reset flow.
func (a *authService) FederatedLogin(ctx context.Context, authCode string) (models.FederatedLogin, error) {
	log := logger.FromContext(ctx)

	if a.identityProvider == nil {
		return models.FederatedLogin{}, ErrFederatedLoginDisabled
	}

	identity, err := a.identityProvider.Exchange(ctx, authCode)
	if err != nil {
		log.Err(err).Str("func", "*authService.FederatedLogin").Msg("identity provider exchange failed")
		return models.FederatedLogin{}, fmt.Errorf("%w: %w", ErrProviderError, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, identity.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		user, err = a.createFederatedUser(ctx, identity)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.FederatedLogin").Str("email", identity.Email).Msg("error resolving federated user")
		return models.FederatedLogin{}, fmt.Errorf("error resolving federated user: %w", err)
	}

	return models.FederatedLogin{
		UserID:       user.UserID,
		AccessToken:  identity.AccessToken,
		RefreshToken: identity.RefreshToken,
	}, nil
}

func (a *authService) createFederatedUser(ctx context.Context, identity models.ExternalIdentity) (models.User, error) {
	secret := make([]byte, placeholderPasswordBytes)
	if _, err := rand.Read(secret); err != nil {
		return models.User{}, fmt.Errorf("error generating placeholder password: %w", err)
	}

	passwordHash, err := a.hasher.Hash(hex.EncodeToString(secret))
	if err != nil {
		return models.User{}, err
	}

	nickname := identity.Name
	if nickname == "" {
		nickname = identity.Email
	}

	user, err := a.userRepository.CreateUser(ctx, newUser(nickname, identity.Email, passwordHash))
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// a concurrent login created the account first
		return a.userRepository.FindUserByEmail(ctx, identity.Email)
	}

	return user, err
}

// BeginFederatedLogin registers a pending login under a fresh state value
// and returns the provider consent URL carrying it.
func (a *authService) BeginFederatedLogin(ctx context.Context) (string, string, error) {
	if a.identityProvider == nil {
		return "", "", ErrFederatedLoginDisabled
	}

	state := a.newID()
	err := a.oauthStates.Put(ctx, models.OAuthStatus{
		State:  state,
		Status: models.OAuthStatePending,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.BeginFederatedLogin").Msg("error saving oauth state")
		return "", "", fmt.Errorf("error saving oauth state: %w", err)
	}

	return a.identityProvider.AuthCodeURL(state), state, nil
}

// CompleteFederatedLogin finishes the login registered under state.
//
// Provider and store failures of the login itself are recorded in the
// returned status rather than returned as errors. A state that is not
// pending anymore, or that another callback is already completing, is
// returned unchanged.
func (a *authService) CompleteFederatedLogin(ctx context.Context, state, authCode string) (models.OAuthStatus, error) {
	log := logger.FromContext(ctx)

	if a.identityProvider == nil {
		return models.OAuthStatus{}, ErrFederatedLoginDisabled
	}

	current, err := a.FederatedLoginStatus(ctx, state)
	if err != nil {
		return models.OAuthStatus{}, err
	}
	if current.Status != models.OAuthStatePending {
		return current, nil
	}

	claimed, err := a.oauthStates.Claim(ctx, state)
	switch {
	case errors.Is(err, store.ErrOAuthStateNotFound):
		return models.OAuthStatus{}, ErrUnknownOAuthState
	case err != nil:
		log.Err(err).Str("func", "*authService.CompleteFederatedLogin").Msg("error claiming oauth state")
		return models.OAuthStatus{}, fmt.Errorf("error claiming oauth state: %w", err)
	case !claimed:
		// другой callback уже обменивает код по этому state
		return current, nil
	}

	status := models.OAuthStatus{State: state}

	login, err := a.FederatedLogin(ctx, authCode)
	switch {
	case err == nil:
		status.Status = models.OAuthStateSuccess
		status.UserID = login.UserID
		status.AccessToken = login.AccessToken
		status.RefreshToken = login.RefreshToken
	case errors.Is(err, ErrProviderError):
		status.Status = models.OAuthStateError
		status.Error = ErrProviderError.Error()
	default:
		status.Status = models.OAuthStateError
		status.Error = "federated login failed"
	}

	if err = a.oauthStates.Put(ctx, status); err != nil {
		log.Err(err).Str("func", "*authService.CompleteFederatedLogin").Msg("error saving oauth state")
		return models.OAuthStatus{}, fmt.Errorf("error saving oauth state: %w", err)
	}

	return status, nil
}

// FederatedLoginStatus returns the status recorded under state, or
// ErrUnknownOAuthState if it is unknown or expired.
func (a *authService) FederatedLoginStatus(ctx context.Context, state string) (models.OAuthStatus, error) {
	if state == "" {
		return models.OAuthStatus{}, ErrUnknownOAuthState
	}

	status, err := a.oauthStates.Get(ctx, state)
	if err != nil {
		if errors.Is(err, store.ErrOAuthStateNotFound) {
			return models.OAuthStatus{}, ErrUnknownOAuthState
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.FederatedLoginStatus").Msg("error reading oauth state")
		return models.OAuthStatus{}, fmt.Errorf("error reading oauth state: %w", err)
	}

	return status, nil
}
