// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths cost one bcrypt comparison.
const dummyPassword = "task-keeper-dummy-password"

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; sessions are HS256 JWTs.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// hashCost is the bcrypt cost used for new passwords.
	hashCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	dummyHash func() (string, error)
	now       func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		hashCost:       cost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		dummyHash: sync.OnceValues(func() (string, error) {
			return utils.HashPassword(dummyPassword, cost)
		}),
		now:    time.Now,
		logger: logger,
	}
}

// normalizeEmail lower-cases and trims email. Lookups and inserts both go
// through it so the UNIQUE constraint is case-insensitive in effect.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser validates the request, hashes the password and persists a
// new account with the default role and preferences.
//
// A taken email surfaces as store.ErrEmailAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	request.Name = strings.TrimSpace(request.Name)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RegisterUser").Msg("invalid registration data")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(request.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Preferences:  models.DefaultPreferences(),
		CreatedAt:    a.now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login checks the credentials and returns the matching account.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", request.Email).Msg("login for unknown email")
		if hash, hashErr := a.dummyHash(); hashErr == nil {
			_ = utils.CheckPassword(hash, request.Password)
		}
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, request.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", foundUser.ID).Msg("password check failed")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the user id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Public(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Any failure (expired, wrong issuer,
// bad signature, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// GetCurrentUser returns the account behind an authenticated request.
func (a *authService) GetCurrentUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrNoUserID
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("current user lookup failed")
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	return user, nil
}
