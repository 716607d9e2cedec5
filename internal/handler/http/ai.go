// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.AssistantService.Summary(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var request models.ChatRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	response, err := h.services.AssistantService.Chat(r.Context(), userID(r), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ChatResponse{Response: response}, http.StatusOK)
}

func (h *Handler) motivationalMessage(w http.ResponseWriter, r *http.Request) {
	message := h.services.AssistantService.MotivationalMessage(r.Context(), userID(r))

	utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) suggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.services.AssistantService.Suggestions(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuggestionsResponse{Suggestions: suggestions}, http.StatusOK)
}
