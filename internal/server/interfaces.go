// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the transport servers of this package.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
