// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a flag.Value.
// An empty host means every interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line args into a partial config.
//
// Flags:
//
//	-a                server address in format [host]:port
//	-d                database DSN
//	-driver           database driver (pgx or sqlite3)
//	-c / -config      json file path with configs
//	-env              environment name (development, production)
//	-token-sign-key   token signing key
//	-token-issuer     token issuer name
//	-token-duration   token lifetime (e.g. "168h")
//	-hash-cost        bcrypt cost
//	-request-timeout  server request timeout (e.g. "30s")
//	-origins          comma separated CORS origins
//	-advisor-key      remote model API key
//	-advisor-url      remote model base URL
//	-advisor-model    remote model name
//	-server           API base URL used by the client
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("task-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var environment string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var hashCost int
	var origins string
	var advisorKey, advisorURL, advisorModel string
	var apiAddress string

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Environment: development or production")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")
	fs.StringVar(&advisorKey, "advisor-key", "", "Remote model API key")
	fs.StringVar(&advisorURL, "advisor-url", "", "Remote model base URL")
	fs.StringVar(&advisorModel, "advisor-model", "", "Remote model name")
	fs.StringVar(&apiAddress, "server", "", "API base URL for the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:      environment,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: hashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(origins),
		},
		Advisor: Advisor{
			APIKey:  advisorKey,
			BaseURL: advisorURL,
			Model:   advisorModel,
		},
		Adapter: Adapter{
			HTTPAddress: apiAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses [host]:port. The host must be empty, "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
