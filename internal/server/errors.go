// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPHandler is returned when there is no handler or no listen
	// address to build the HTTP server from.
	ErrNoHTTPHandler = errors.New("no http handler or address configured")

	errServerNotBuilt = errors.New("http server is not built")
)
