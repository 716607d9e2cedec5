// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "task-keeper",
		TokenDuration:    time.Hour,
		PasswordHashCost: 4,
	}
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig(), logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestRegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "ada@example.com", user.Email)
			assert.Equal(t, "Ada", user.Name)
			assert.Equal(t, models.RoleUser, user.Role)
			assert.Equal(t, models.DefaultPreferences(), user.Preferences)
			assert.Equal(t, fixedNow, user.CreatedAt)
			assert.NoError(t, utils.CheckPassword(user.PasswordHash, "secret1"))
			user.ID = 7
			return user, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "  Ada ",
		Email:    " ADA@Example.com ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestRegisterUser_InvalidRequest(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []models.RegisterRequest{
		{Email: "not-an-email", Password: "secret1"},
		{Email: "a@b.co", Password: "short"},
		{Password: "secret1"},
	}

	for _, request := range tests {
		_, err := svc.RegisterUser(context.Background(), request)
		assert.ErrorIs(t, err, validators.ErrValidationFailed)
	}
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "a@b.co", Password: "secret1"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret1", 4)
	require.NoError(t, err)
	stored := models.User{ID: 3, Email: "a@b.co", PasswordHash: hash}

	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "success", password: "secret1", found: stored},
		{name: "wrong password", password: "secret2", found: stored, wantErr: ErrInvalidCredentials},
		{name: "unknown email", password: "secret1", findErr: store.ErrNoUserWasFound, wantErr: ErrInvalidCredentials},
		{name: "storage failure", password: "secret1", findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			repo.EXPECT().FindUserByEmail(gomock.Any(), "a@b.co").Return(tt.found, tt.findErr)

			user, err := svc.Login(context.Background(), models.LoginRequest{Email: " A@B.co", Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), user.ID)
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.co"})

	assert.ErrorIs(t, err, validators.ErrValidationFailed)
}

func TestCreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 42, Email: "a@b.co", Name: "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongKey(t *testing.T) {
	svc, _ := newTestAuthService(t)
	token, err := utils.GenerateJWTToken("task-keeper", models.PublicUser{ID: 1}, time.Hour, "other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestGetCurrentUser(t *testing.T) {
	svc, repo := newTestAuthService(t)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(6)).Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.GetCurrentUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)

	_, err = svc.GetCurrentUser(context.Background(), 6)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)

	_, err = svc.GetCurrentUser(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoUserID)
}
