// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Accepted bcrypt cost range.
const (
	MinPasswordHashCost = 10
	MaxPasswordHashCost = 14
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.PasswordHashCost < MinPasswordHashCost || cfg.App.PasswordHashCost > MaxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d outside %d..%d",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, MinPasswordHashCost, MaxPasswordHashCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Advisor.BaseURL == "" || cfg.Advisor.Model == "" || cfg.Advisor.TimeoutMS <= 0 || cfg.Advisor.MaxTokens < 0 {
		return ErrInvalidAdvisorConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
