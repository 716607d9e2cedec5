// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

const productionServerErrorMessage = "Something went wrong!"

type errorStatus struct {
	target error
	status int
}

// errorStatusMap is checked in order, so an error wrapping several
// sentinels gets the status of the first match. Client errors come first.
var errorStatusMap = []errorStatus{
	{validators.ErrValidationFailed, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNoUserID, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{store.ErrEmailAlreadyExists, http.StatusConflict},

	{store.ErrTaskNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{ErrInvalidTaskID, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatusMap {
		if errors.Is(err, mapping.target) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}

// messageFor returns the client-facing text for err.
func (h *Handler) messageFor(err error, status int) string {
	switch {
	case status == http.StatusBadRequest:
		if message := validators.Message(err); message != "" {
			return message
		}
		return ErrInvalidJSON.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "User already exists"
	case errors.Is(err, store.ErrTaskNotFound), errors.Is(err, ErrInvalidTaskID):
		return "Task not found"
	case errors.Is(err, store.ErrNoUserWasFound):
		return "User not found"
	case errors.Is(err, ErrRouteNotFound):
		return "Route not found"
	case status == http.StatusUnauthorized:
		if errors.Is(err, ErrEmptyAuthorizationHeader) {
			return ErrEmptyAuthorizationHeader.Error()
		}
		return "Token is not valid"
	case status >= http.StatusInternalServerError && h.production:
		return productionServerErrorMessage
	}
	return err.Error()
}

// writeError logs err and replies with its mapped status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, h.messageFor(err, status), status)
}
