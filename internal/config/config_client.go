// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds the transport settings of the terminal client.
type ClientAdapter struct {
	// HTTPAddress is the API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of every API call.
	RequestTimeout time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	LogLevel string
}

// GetClientConfig loads the same sources as the server and keeps only the
// fields the client needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
