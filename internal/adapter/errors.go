// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedStatus covers every other non-2xx reply.
	ErrUnexpectedStatus = errors.New("unexpected status")

	ErrInvalidAddress = errors.New("invalid adapter http address")
	ErrNoToken        = errors.New("server issued no token")
)
