package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/adapter"
	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
)

// authService is the concrete implementation of AuthService.
// It holds no per-request state; every flow reads and writes through the
// repositories, so the service is safe for concurrent use.
type authService struct {
	userRepository       store.UserRepository
	resetCodeRepository  store.ResetCodeRepository
	resetGrantRepository store.ResetGrantRepository
	oauthStates          store.OAuthStateStore

	// notifier delivers reset codes out of band.
	notifier adapter.Notifier

	// identityProvider is nil when federated login is not configured.
	identityProvider adapter.IdentityProvider

	hasher passwordHasher
	codes  codeGenerator

	// dummyHash is compared against on logins for unknown emails, so that
	// they cost the same bcrypt work as a wrong password.
	dummyHash string

	// grantSignKey is the HMAC secret of reset grant tokens.
	grantSignKey string

	// grantTTL bounds the time between a verification and the password change.
	grantTTL time.Duration

	// legacyPasswordReset lets ResetPassword trust the email alone.
	legacyPasswordReset bool

	now   func() time.Time
	newID func() string

	logger *logger.Logger
}

// NewAuthService wires the account flows to their collaborators.
// provider may be nil, in which case every federated operation returns
// ErrFederatedLoginDisabled.
func NewAuthService(
	storages *store.Storages,
	notifier adapter.Notifier,
	provider adapter.IdentityProvider,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	hasher := utils.NewPasswordHasher(cfg.PasswordHashCost)
	dummyHash, err := hasher.Hash("course-auth-login-dummy")
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error precomputing dummy password hash")
	}

	return &authService{
		userRepository:       storages.UserRepository,
		resetCodeRepository:  storages.ResetCodeRepository,
		resetGrantRepository: storages.ResetGrantRepository,
		oauthStates:          storages.OAuthStateStore,
		notifier:             notifier,
		identityProvider:     provider,
		hasher:               hasher,
		dummyHash:            dummyHash,
		codes:                utils.NewCodeGenerator(cfg.ResetCodeTTL),
		grantSignKey:         cfg.ResetGrantSignKey,
		grantTTL:             cfg.ResetGrantTTL,
		legacyPasswordReset:  cfg.LegacyPasswordReset,
		now:                  time.Now,
		newID:                utils.NewID,
		logger:               logger,
	}
}

// Signup creates an account and returns its id.
//
// Returns:
//   - ErrInvalidDataProvided if a field is empty or the password cannot be hashed.
//   - ErrDuplicateIdentity if a user with the same nickname and email exists.
//   - ErrDuplicateEmail if the email is taken, including by a concurrent signup.
func (a *authService) Signup(ctx context.Context, nickname, email, password string) (int64, error) {
	log := logger.FromContext(ctx)

	if nickname == "" || email == "" || password == "" {
		log.Error().Str("func", "*authService.Signup").Str("email", email).Msg("invalid user data provided")
		return 0, ErrInvalidDataProvided
	}

	existing, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Nickname == nickname {
			return 0, ErrDuplicateIdentity
		}
		return 0, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Signup").Str("email", email).Msg("error looking up user")
		return 0, fmt.Errorf("error looking up user: %w", err)
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.CreateUser(ctx, newUser(nickname, email, passwordHash))
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return 0, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}
		log.Err(err).Str("func", "*authService.Signup").Str("email", email).Msg("user creation ended with error")
		return 0, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Int64("user_id", user.UserID).Msg("user created")
	return user.UserID, nil
}

// Login verifies credentials and returns the user id. An unknown email and
// a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (int64, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return 0, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.Verify(password, a.dummyHash)
			return 0, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Str("email", email).Msg("error looking up user")
		return 0, fmt.Errorf("error looking up user: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		log.Info().Str("func", "*authService.Login").Str("email", email).Msg("password mismatch")
		return 0, ErrInvalidCredentials
	}

	return user.UserID, nil
}

func newUser(nickname, email, passwordHash string) models.User {
	return models.User{
		Nickname:     nickname,
		Email:        email,
		PasswordHash: passwordHash,
	}
}
