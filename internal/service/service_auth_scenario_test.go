// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/MKhiriev/go-course-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLedger is an in-memory stand-in for the SQL repositories with the
// same observable semantics: unique emails, one code per email, strict
// expiry and single-use consumption.
type memoryLedger struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
	codes  map[string]models.ResetCode
	grants map[string]models.ResetGrant
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{
		users:  make(map[string]models.User),
		codes:  make(map[string]models.ResetCode),
		grants: make(map[string]models.ResetGrant),
	}
}

func (l *memoryLedger) CreateUser(_ context.Context, user models.User) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.users[user.Email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	l.nextID++
	user.UserID = l.nextID
	l.users[user.Email] = user
	return user, nil
}

func (l *memoryLedger) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	user, ok := l.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (l *memoryLedger) UpdatePasswordHash(_ context.Context, email, passwordHash string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	user, ok := l.users[email]
	if !ok {
		return 0, nil
	}
	user.PasswordHash = passwordHash
	l.users[email] = user
	return 1, nil
}

func (l *memoryLedger) UpsertResetCode(_ context.Context, code models.ResetCode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.codes[code.Email] = code
	return nil
}

// codeValidAt mirrors the SQL filter expires_at > now: a code expiring
// exactly at now is already invalid.
func codeValidAt(rc models.ResetCode, now time.Time) bool {
	return rc.ExpiresAt.After(now)
}

func (l *memoryLedger) FindValidResetCode(_ context.Context, email, code string, now time.Time) (models.ResetCode, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rc, ok := l.codes[email]
	if !ok || rc.Code != code || !codeValidAt(rc, now) {
		return models.ResetCode{}, store.ErrResetCodeNotFound
	}
	return rc, nil
}

func (l *memoryLedger) DeleteResetCodeByEmail(_ context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.codes, email)
	return nil
}

func (l *memoryLedger) ConsumeResetCode(ctx context.Context, email, code string, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rc, ok := l.codes[email]
	if !ok || rc.Code != code || !codeValidAt(rc, now) {
		return store.ErrResetCodeNotFound
	}
	delete(l.codes, email)
	return nil
}

func (l *memoryLedger) DeleteExpiredResetCodes(_ context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func (l *memoryLedger) CreateResetGrant(_ context.Context, grant models.ResetGrant) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.grants[grant.ID] = grant
	return nil
}

func (l *memoryLedger) ConsumeResetGrant(_ context.Context, grantID, email string, now time.Time) (models.ResetGrant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	grant, ok := l.grants[grantID]
	if !ok || grant.Email != email || !grant.ExpiresAt.After(now) {
		return models.ResetGrant{}, store.ErrResetGrantNotFound
	}
	delete(l.grants, grantID)
	return grant, nil
}

func (l *memoryLedger) DeleteExpiredResetGrants(_ context.Context, now time.Time) (int64, error) {
	return 0, nil
}

// capturingNotifier keeps the last delivered code.
type capturingNotifier struct {
	mu   sync.Mutex
	sent map[string]string
}

func (n *capturingNotifier) SendResetCode(_ context.Context, email, code string, _ time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.sent == nil {
		n.sent = make(map[string]string)
	}
	n.sent[email] = code
	return nil
}

func (n *capturingNotifier) last(email string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[email]
}

type scenario struct {
	svc      *authService
	ledger   *memoryLedger
	notifier *capturingNotifier
	clock    time.Time
	grantSeq int
}

func newScenario(t *testing.T, cfg config.App) *scenario {
	t.Helper()

	s := &scenario{
		ledger:   newMemoryLedger(),
		notifier: &capturingNotifier{},
		clock:    testNow,
	}
	storages := &store.Storages{
		UserRepository:       s.ledger,
		ResetCodeRepository:  s.ledger,
		ResetGrantRepository: s.ledger,
	}

	s.svc = NewAuthService(storages, s.notifier, nil, cfg, logger.Nop()).(*authService)
	s.svc.now = func() time.Time { return s.clock }
	s.svc.newID = func() string {
		s.grantSeq++
		return "grant-" + strconv.Itoa(s.grantSeq)
	}

	return s
}

func TestAuthService_Scenario_SignupLoginReset(t *testing.T) {
	s := newScenario(t, testAppConfig())
	ctx := context.Background()

	id, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = s.svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = s.svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, s.svc.RequestReset(ctx, "a@x.com"))
	require.Len(t, s.ledger.codes, 1)
	row := s.ledger.codes["a@x.com"]
	c1 := s.notifier.last("a@x.com")
	assert.Equal(t, c1, row.Code)
	assert.Regexp(t, `^[1-9][0-9]{5}$`, c1)
	assert.Equal(t, testNow.Add(10*time.Minute), row.ExpiresAt)

	s.clock = testNow.Add(9 * time.Minute)
	grant, err := s.svc.VerifyReset(ctx, "a@x.com", c1)
	require.NoError(t, err)
	assert.Empty(t, s.ledger.codes)

	require.NoError(t, s.svc.ResetPassword(ctx, "a@x.com", "pw2", grant.Token))

	id, err = s.svc.Login(ctx, "a@x.com", "pw2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = s.svc.Login(ctx, "a@x.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Scenario_DuplicateSignupCreatesNoRow(t *testing.T) {
	s := newScenario(t, testAppConfig())
	ctx := context.Background()

	_, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = s.svc.Signup(ctx, "bob", "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, s.ledger.users, 1)
}

func TestAuthService_Scenario_CodeVerifiesOnce(t *testing.T) {
	s := newScenario(t, testAppConfig())
	ctx := context.Background()

	_, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, s.svc.RequestReset(ctx, "a@x.com"))
	code := s.notifier.last("a@x.com")

	_, err = s.svc.VerifyReset(ctx, "a@x.com", code)
	require.NoError(t, err)

	_, err = s.svc.VerifyReset(ctx, "a@x.com", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestAuthService_Scenario_NewCodeInvalidatesOld(t *testing.T) {
	s := newScenario(t, testAppConfig())
	ctx := context.Background()

	_, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	require.NoError(t, s.svc.RequestReset(ctx, "a@x.com"))
	first := s.notifier.last("a@x.com")

	// regenerate until the second code differs from the first
	second := first
	for second == first {
		require.NoError(t, s.svc.RequestReset(ctx, "a@x.com"))
		second = s.notifier.last("a@x.com")
	}
	require.Len(t, s.ledger.codes, 1)

	_, err = s.svc.VerifyReset(ctx, "a@x.com", first)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)

	_, err = s.svc.VerifyReset(ctx, "a@x.com", second)
	assert.NoError(t, err)
}

func TestAuthService_Scenario_ExpiredCode(t *testing.T) {
	for _, after := range []time.Duration{10 * time.Minute, 11 * time.Minute} {
		t.Run(after.String(), func(t *testing.T) {
			s := newScenario(t, testAppConfig())
			ctx := context.Background()

			_, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
			require.NoError(t, err)
			require.NoError(t, s.svc.RequestReset(ctx, "a@x.com"))
			code := s.notifier.last("a@x.com")

			s.clock = testNow.Add(after)
			_, err = s.svc.VerifyReset(ctx, "a@x.com", code)
			assert.ErrorIs(t, err, ErrInvalidOrExpiredCode)
		})
	}
}

func TestAuthService_Scenario_GrantIsSingleUse(t *testing.T) {
	s := newScenario(t, testAppConfig())
	ctx := context.Background()

	_, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, s.svc.RequestReset(ctx, "a@x.com"))

	grant, err := s.svc.VerifyReset(ctx, "a@x.com", s.notifier.last("a@x.com"))
	require.NoError(t, err)

	require.NoError(t, s.svc.ResetPassword(ctx, "a@x.com", "pw2", grant.Token))
	err = s.svc.ResetPassword(ctx, "a@x.com", "pw3", grant.Token)
	assert.ErrorIs(t, err, ErrInvalidResetGrant)

	_, err = s.svc.Login(ctx, "a@x.com", "pw2")
	assert.NoError(t, err)
}

func TestAuthService_Scenario_ResetWithoutVerification(t *testing.T) {
	s := newScenario(t, testAppConfig())
	ctx := context.Background()

	_, err := s.svc.Signup(ctx, "alice", "a@x.com", "pw1")
	require.NoError(t, err)

	err = s.svc.ResetPassword(ctx, "a@x.com", "pw2", "")
	assert.ErrorIs(t, err, ErrInvalidResetGrant)

	_, err = s.svc.Login(ctx, "a@x.com", "pw1")
	assert.NoError(t, err)
}
