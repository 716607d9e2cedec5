// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
)

var ErrNoUI = errors.New("no ui given")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run shows the login flow, then the task board, and starts over after a
// logout. Quitting from either screen ends Run without an error.
func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("task board: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Debug().Int64("user_id", user.ID).Msg("session ended, back to login")
	}
}
