package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/service"
	"github.com/stretchr/testify/assert"
)

func newInfoHandler(appInfo *mockAppInfoService) *Handler {
	return NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
}

func TestWelcome(t *testing.T) {
	h := newInfoHandler(&mockAppInfoService{})

	rec := httptest.NewRecorder()
	h.welcome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to the API!"}`, rec.Body.String())
}

func TestTestDB(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		wantStatus int
		wantBody   string
	}{
		{"reachable", nil, http.StatusOK, `{"message":"Database connection successful"}`},
		{"unreachable", errors.New("dial tcp: refused"), http.StatusInternalServerError, `{"error":"Database connection failed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newInfoHandler(&mockAppInfoService{dbErr: tt.dbErr})

			rec := httptest.NewRecorder()
			h.testDB(rec, httptest.NewRequest(http.MethodGet, "/test-db", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "refused")
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	h := newInfoHandler(&mockAppInfoService{version: "v1.2.3"})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3", rec.Body.String())
}
