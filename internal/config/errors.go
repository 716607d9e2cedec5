// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a merged configuration is unusable.
var (
	// ErrInvalidAppConfigs: missing sign key or issuer, zero token
	// duration or an out-of-range bcrypt cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs: unknown driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs: empty listen address or negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdvisorConfigs: empty base URL or model, or non-positive timeout.
	ErrInvalidAdvisorConfigs = errors.New("invalid advisor configuration")
	// ErrInvalidAdapterConfigs: missing API address or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
