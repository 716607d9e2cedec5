// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const minPasswordLength = 6

// RegisterModel is the registration page. The server issues a token on
// registration, so success ends the login flow like [LoginModel] does.
type RegisterModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *RegisterModel {
	nameInput := newInput("name (optional)", 50)
	nameInput.Focus()

	return &RegisterModel{
		ctx:     ctx,
		adapter: serverAdapter,
		inputs: []textinput.Model{
			nameInput,
			newInput("email", 254),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			request, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(request)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// request builds the registration body or explains what is missing.
func (m *RegisterModel) request() (models.RegisterRequest, string) {
	name := strings.TrimSpace(m.inputs[0].Value())
	email := strings.TrimSpace(m.inputs[1].Value())
	password := m.inputs[2].Value()
	repeat := m.inputs[3].Value()

	switch {
	case email == "" || password == "":
		return models.RegisterRequest{}, "Email and password are required"
	case len(password) < minPasswordLength:
		return models.RegisterRequest{}, "Password must be at least 6 characters"
	case password != repeat:
		return models.RegisterRequest{}, "Passwords do not match"
	}

	return models.RegisterRequest{Name: name, Email: email, Password: password}, ""
}

func (m *RegisterModel) View() string {
	labels := []string{"Name", "Email", "Password", "Repeat"}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(padRight(label, 10))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(request models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		auth, err := serverAdapter.Register(ctx, request)
		return LoginResult{User: auth.User, Err: err}
	}
}
