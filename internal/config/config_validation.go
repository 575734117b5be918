// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.OAuthState.TTL <= 0 || cfg.Storage.OAuthState.Capacity <= 0 {
		return fmt.Errorf("%w: oauth state ttl and capacity must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.App.ResetCodeTTL <= 0 || cfg.App.ResetGrantTTL <= 0 {
		return fmt.Errorf("%w: reset ttls must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d is out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if !cfg.App.LegacyPasswordReset && cfg.App.ResetGrantSignKey == "" {
		return fmt.Errorf("%w: reset grant sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Adapter.SMTP.Host != "" && (cfg.Adapter.SMTP.Port <= 0 || cfg.Adapter.SMTP.From == "") {
		return fmt.Errorf("%w: smtp port and sender are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Google.Enabled() && cfg.Adapter.Google.RedirectURL == "" {
		return fmt.Errorf("%w: google redirect url is required", ErrInvalidAdapterConfigs)
	}

	return nil
}
