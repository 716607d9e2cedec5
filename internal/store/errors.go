// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when a user with the same
	// (lower-cased) email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTaskNotFound is returned when no task with the given id belongs
	// to the given user.
	ErrTaskNotFound = errors.New("task was not found")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrUnsupportedDriver    = errors.New("unsupported database driver")
)
