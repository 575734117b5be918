package service

import (
	"testing"

	"github.com/MKhiriev/go-course-auth/internal/adapter"
	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdapters(t *testing.T) {
	t.Run("log notifier and no provider by default", func(t *testing.T) {
		adapters := NewAdapters(config.Adapter{}, logger.Nop())

		assert.IsType(t, &adapter.LogNotifier{}, adapters.Notifier)
		assert.Nil(t, adapters.IdentityProvider)
	})

	t.Run("smtp and google when configured", func(t *testing.T) {
		adapters := NewAdapters(config.Adapter{
			SMTP:   config.SMTP{Host: "smtp.example.com", Port: 587, From: "a@b.c"},
			Google: config.Google{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost/cb"},
		}, logger.Nop())

		assert.IsType(t, &adapter.SMTPNotifier{}, adapters.Notifier)
		assert.IsType(t, &adapter.GoogleProvider{}, adapters.IdentityProvider)
	})
}

func TestNewServices(t *testing.T) {
	services, err := NewServices(&store.Storages{}, NewAdapters(config.Adapter{}, logger.Nop()), testAppConfig(), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CourseService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := testAppConfig()
	cfg.Version = ""

	_, err := NewServices(&store.Storages{}, Adapters{}, cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
