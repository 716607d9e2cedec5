// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_RequiresFields(t *testing.T) {
	m := NewLoginModel(context.Background(), mock.NewMockServerAdapter(gomock.NewController(t)))

	_, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", m.errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	m := NewLoginModel(context.Background(), serverAdapter)
	m.inputs[0].SetValue(" ann@example.com ")
	m.inputs[1].SetValue("secret1")

	user := models.PublicUser{ID: 7, Name: "Ann", Email: "ann@example.com"}
	serverAdapter.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "ann@example.com", Password: "secret1"}).
		Return(models.AuthResponse{User: user, Token: "t"}, nil)

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	assert.Equal(t, LoginResult{User: user}, cmd())
}

func TestLoginModel_ShowsServerMessage(t *testing.T) {
	m := NewLoginModel(context.Background(), mock.NewMockServerAdapter(gomock.NewController(t)))
	m.submitting = true

	m.Update(LoginResult{Err: &adapter.ResponseError{StatusCode: 401, Message: "Invalid credentials"}})

	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid credentials", m.errMsg)
}

func TestLoginModel_TabMovesFocus(t *testing.T) {
	m := NewLoginModel(context.Background(), mock.NewMockServerAdapter(gomock.NewController(t)))

	m.Update(tabKey)
	assert.Equal(t, 1, m.focus)

	m.Update(tabKey)
	assert.Equal(t, 0, m.focus)
}

func TestRegisterModel_Validation(t *testing.T) {
	tests := []struct {
		name     string
		values   [4]string
		wantErr  string
		wantBody models.RegisterRequest
	}{
		{name: "missing email", values: [4]string{"Ann", "", "secret1", "secret1"}, wantErr: "Email and password are required"},
		{name: "short password", values: [4]string{"Ann", "ann@example.com", "abc", "abc"}, wantErr: "Password must be at least 6 characters"},
		{name: "mismatch", values: [4]string{"Ann", "ann@example.com", "secret1", "secret2"}, wantErr: "Passwords do not match"},
		{
			name:     "ok",
			values:   [4]string{" Ann ", "ann@example.com", "secret1", "secret1"},
			wantBody: models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRegisterModel(context.Background(), mock.NewMockServerAdapter(gomock.NewController(t)))
			for i, v := range tt.values {
				m.inputs[i].SetValue(v)
			}

			body, errMsg := m.request()
			assert.Equal(t, tt.wantErr, errMsg)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRootModel_LoginResultEndsFlow(t *testing.T) {
	pages := map[string]tea.Model{pageMenu: NewMenuModel()}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("", "", ""))

	user := models.PublicUser{ID: 7, Email: "ann@example.com"}
	next, cmd := root.Update(LoginResult{User: user})

	result, ok := next.(RootModel)
	require.True(t, ok)
	assert.Equal(t, user, result.user)
	assert.False(t, result.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_Navigation(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	login := NewLoginModel(context.Background(), serverAdapter)
	pages := map[string]tea.Model{pageMenu: NewMenuModel(), pageLogin: login}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	next, cmd := root.Update(enterKey)
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())

	result := next.(RootModel)
	assert.Same(t, login, result.current)

	next, _ = result.Update(NavigateTo{Page: "missing"})
	assert.Same(t, login, next.(RootModel).current)
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	next, _ := root.Update(runeKey("v"))
	assert.Contains(t, next.View(), "1.0.0")

	next, _ = next.Update(escKey)
	assert.False(t, next.(RootModel).showBuildInfo)

	next, cmd := next.Update(runeKey("q"))
	assert.True(t, next.(RootModel).quitByUser)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
