package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-course-auth/models"
)

// AuthService runs the account flows: signup, login, the password reset
// lifecycle and federated login.
type AuthService interface {
	Signup(ctx context.Context, nickname, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (int64, error)

	RequestReset(ctx context.Context, email string) error
	VerifyReset(ctx context.Context, email, code string) (models.ResetGrant, error)
	ResetPassword(ctx context.Context, email, newPassword, grantToken string) error

	FederatedLogin(ctx context.Context, authCode string) (models.FederatedLogin, error)
	BeginFederatedLogin(ctx context.Context) (authURL string, state string, err error)
	CompleteFederatedLogin(ctx context.Context, state, authCode string) (models.OAuthStatus, error)
	FederatedLoginStatus(ctx context.Context, state string) (models.OAuthStatus, error)
}

type CourseService interface {
	AddCourse(ctx context.Context, name string) (models.Course, error)
	ListCourses(ctx context.Context, page models.Page) ([]models.Course, error)
}

// AppInfoService reports build and dependency information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckDatabase pings the relational store.
	CheckDatabase(ctx context.Context) error
}

// passwordHasher is satisfied by *utils.PasswordHasher.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// codeGenerator is satisfied by *utils.CodeGenerator.
type codeGenerator interface {
	Generate(now time.Time) (string, time.Time, error)
}
