// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "all interfaces", addr: NetAddress{Port: 5000}, expected: ":5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:5000", want: NetAddress{Host: "127.0.0.1", Port: 5000}},
		{name: "port only", input: ":5000", want: NetAddress{Port: 5000}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:7000",
		"-d", "postgres://localhost/tasks",
		"-driver", "pgx",
		"-config", "/etc/tasks.json",
		"-env", "production",
		"-token-sign-key", "key",
		"-token-issuer", "iss",
		"-token-duration", "2h",
		"-hash-cost", "10",
		"-request-timeout", "15s",
		"-origins", "http://a.test, http://b.test",
		"-advisor-key", "mk",
		"-advisor-url", "http://model.test",
		"-advisor-model", "m",
		"-server", "http://api.test",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/tasks", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/tasks.json", cfg.JSONFilePath)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "mk", cfg.Advisor.APIKey)
	assert.Equal(t, "http://model.test", cfg.Advisor.BaseURL)
	assert.Equal(t, "m", cfg.Advisor.Model)
	assert.Equal(t, "http://api.test", cfg.Adapter.HTTPAddress)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})

	assert.Error(t, err)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})

	assert.Error(t, err)
}
