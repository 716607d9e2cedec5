// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the task keeper.
//
// [TUI.LoginFlow] runs the menu, login and register pages until a session is
// established; [TUI.MainLoop] then runs the task board for that user.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit  = errors.New("user quit")
	ErrNoAdapter = errors.New("no server adapter given")
)

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if serverAdapter == nil {
		return nil, ErrNoAdapter
	}

	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow blocks until the user logs in, registers or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.PublicUser, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.adapter),
		pageRegister: NewRegisterModel(ctx, t.adapter),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.PublicUser{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.PublicUser{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.PublicUser{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.user.ID).Msg("logged in")
	return result.user, nil
}

// MainLoop runs the task board and reports whether the user logged out.
// A rejected token counts as a logout.
func (t *TUI) MainLoop(ctx context.Context, user models.PublicUser) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.adapter, user, time.Now)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.adapter.SetToken("")
		t.logger.Info().Int64("user_id", user.ID).Msg("logged out")
	}
	return result.logout, nil
}
