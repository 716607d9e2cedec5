// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-task-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches [RootModel] to Page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult ends the login flow when Err is nil. Both login and register
// produce it.
type LoginResult struct {
	User models.PublicUser
	Err  error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type taskCreatedMsg struct {
	task models.Task
	err  error
}

type taskUpdatedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

type analyzedMsg struct {
	suggestion models.Suggestion
	err        error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
