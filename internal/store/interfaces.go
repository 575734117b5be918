package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-course-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] if no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdatePasswordHash returns the number of updated rows (0 or 1).
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) (int64, error)
}

// ResetCodeRepository is the ledger of outstanding reset codes, at most one
// per email.
type ResetCodeRepository interface {
	UpsertResetCode(ctx context.Context, code models.ResetCode) error
	FindValidResetCode(ctx context.Context, email, code string, now time.Time) (models.ResetCode, error)
	DeleteResetCodeByEmail(ctx context.Context, email string) error
	// ConsumeResetCode atomically finds a valid code and deletes it.
	// Of two concurrent calls for the same code at most one succeeds.
	ConsumeResetCode(ctx context.Context, email, code string, now time.Time) error
	DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error)
}

// ResetGrantRepository is the ledger of single-use reset grants.
type ResetGrantRepository interface {
	CreateResetGrant(ctx context.Context, grant models.ResetGrant) error
	// ConsumeResetGrant deletes and returns the grant if it exists, belongs
	// to email, and has not expired at now.
	ConsumeResetGrant(ctx context.Context, grantID, email string, now time.Time) (models.ResetGrant, error)
	DeleteExpiredResetGrants(ctx context.Context, now time.Time) (int64, error)
}

// CourseRepository persists the course catalog.
type CourseRepository interface {
	CreateCourse(ctx context.Context, name string) (models.Course, error)
	ListCourses(ctx context.Context, page models.Page) ([]models.Course, error)
}

// OAuthStateStore tracks in-flight federated logins by state value.
type OAuthStateStore interface {
	Put(ctx context.Context, status models.OAuthStatus) error
	// Get returns [ErrOAuthStateNotFound] for unknown or expired states.
	Get(ctx context.Context, state string) (models.OAuthStatus, error)
	// Claim marks a pending state as being completed. It reports true to
	// exactly one caller per state; later callers, and callers for states
	// that are not pending, get false. Unknown or expired states yield
	// [ErrOAuthStateNotFound].
	Claim(ctx context.Context, state string) (bool, error)
	// Evict drops entries expired at now and reports how many were removed.
	Evict(ctx context.Context, now time.Time) int
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
