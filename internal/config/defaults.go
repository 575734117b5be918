package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultResetCodeTTL     = 10 * time.Minute
	defaultResetGrantTTL    = 10 * time.Minute
	defaultOAuthStateTTL    = 10 * time.Minute
	defaultOAuthStateCap    = 10_000
	defaultCleanupInterval  = time.Minute
	defaultSMTPPort         = 587
	defaultAdapterTimeout   = 10 * time.Second
	defaultPasswordHashCost = bcrypt.DefaultCost
	defaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ResetCodeTTL:     defaultResetCodeTTL,
			ResetGrantTTL:    defaultResetGrantTTL,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			OAuthState: OAuthState{
				TTL:      defaultOAuthStateTTL,
				Capacity: defaultOAuthStateCap,
			},
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Adapter: Adapter{
			SMTP:           SMTP{Port: defaultSMTPPort},
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			CleanupInterval: defaultCleanupInterval,
		},
	}
}
