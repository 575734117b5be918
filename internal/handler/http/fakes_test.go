package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/service"
	"github.com/MKhiriev/go-course-auth/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn                 func(ctx context.Context, nickname, email, password string) (int64, error)
	loginFn                  func(ctx context.Context, email, password string) (int64, error)
	requestResetFn           func(ctx context.Context, email string) error
	verifyResetFn            func(ctx context.Context, email, code string) (models.ResetGrant, error)
	resetPasswordFn          func(ctx context.Context, email, newPassword, grantToken string) error
	federatedLoginFn         func(ctx context.Context, authCode string) (models.FederatedLogin, error)
	beginFederatedLoginFn    func(ctx context.Context) (string, string, error)
	completeFederatedLoginFn func(ctx context.Context, state, authCode string) (models.OAuthStatus, error)
	federatedLoginStatusFn   func(ctx context.Context, state string) (models.OAuthStatus, error)
}

func (m *mockAuthService) Signup(ctx context.Context, nickname, email, password string) (int64, error) {
	return m.signupFn(ctx, nickname, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (int64, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) RequestReset(ctx context.Context, email string) error {
	return m.requestResetFn(ctx, email)
}

func (m *mockAuthService) VerifyReset(ctx context.Context, email, code string) (models.ResetGrant, error) {
	return m.verifyResetFn(ctx, email, code)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, newPassword, grantToken string) error {
	return m.resetPasswordFn(ctx, email, newPassword, grantToken)
}

func (m *mockAuthService) FederatedLogin(ctx context.Context, authCode string) (models.FederatedLogin, error) {
	return m.federatedLoginFn(ctx, authCode)
}

func (m *mockAuthService) BeginFederatedLogin(ctx context.Context) (string, string, error) {
	return m.beginFederatedLoginFn(ctx)
}

func (m *mockAuthService) CompleteFederatedLogin(ctx context.Context, state, authCode string) (models.OAuthStatus, error) {
	return m.completeFederatedLoginFn(ctx, state, authCode)
}

func (m *mockAuthService) FederatedLoginStatus(ctx context.Context, state string) (models.OAuthStatus, error) {
	return m.federatedLoginStatusFn(ctx, state)
}

// ─────────────────────────────────────────────
// Mock CourseService
// ─────────────────────────────────────────────

type mockCourseService struct {
	addCourseFn   func(ctx context.Context, name string) (models.Course, error)
	listCoursesFn func(ctx context.Context, page models.Page) ([]models.Course, error)
}

func (m *mockCourseService) AddCourse(ctx context.Context, name string) (models.Course, error) {
	return m.addCourseFn(ctx, name)
}

func (m *mockCourseService) ListCourses(ctx context.Context, page models.Page) ([]models.Course, error) {
	return m.listCoursesFn(ctx, page)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
	dbErr   error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) CheckDatabase(_ context.Context) error {
	return m.dbErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given fakes. Nil fakes are
// replaced with zero-value ones that panic when called.
func newTestHandler(t *testing.T, auth *mockAuthService, courses *mockCourseService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if courses == nil {
		courses = &mockCourseService{}
	}

	return NewHandler(&service.Services{
		AuthService:    auth,
		CourseService:  courses,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}
