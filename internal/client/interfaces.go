// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal front end the runtime drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.PublicUser, error)
	MainLoop(ctx context.Context, user models.PublicUser) (logout bool, err error)
}
