// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	h.respondWithToken(w, r, foundUser, http.StatusOK)
}

// respondWithToken issues a token for user and returns it in the body and
// in the Authorization header.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{User: user.Public(), Token: token.SignedString}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetCurrentUser(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MeResponse{User: user}, http.StatusOK)
}
