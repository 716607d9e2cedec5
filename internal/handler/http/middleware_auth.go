// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer authentication.
//
// It validates the token from the "Authorization" header through
// AuthService.ParseToken and stores the user id in the request context
// under [utils.UserIDCtxKey]. Requests without a valid token get 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = log.With().Int64("user_id", token.UserID).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userID returns the id stored by auth. Handlers behind auth always have it.
func userID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}
