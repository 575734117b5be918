package service

import (
	"github.com/MKhiriev/go-course-auth/internal/adapter"
	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	CourseService  CourseService
	AppInfoService AppInfoService
}

// Adapters groups the outbound collaborators of the services.
// IdentityProvider is nil when federated login is disabled.
type Adapters struct {
	Notifier         adapter.Notifier
	IdentityProvider adapter.IdentityProvider
}

// NewAdapters selects the notifier and identity provider from cfg: SMTP when
// a relay host is configured, the log notifier otherwise, and Google only
// when its credentials are present.
func NewAdapters(cfg config.Adapter, logger *logger.Logger) Adapters {
	var adapters Adapters

	if cfg.SMTP.Host != "" {
		adapters.Notifier = adapter.NewSMTPNotifier(cfg.SMTP)
	} else {
		adapters.Notifier = adapter.NewLogNotifier(logger)
	}

	if cfg.Google.Enabled() {
		adapters.IdentityProvider = adapter.NewGoogleProvider(cfg)
	}

	return adapters
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages, adapters.Notifier, adapters.IdentityProvider, cfg, logger),
		CourseService:  NewCourseService(storages.CourseRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
