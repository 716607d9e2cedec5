// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

// taskIDFromURL parses {id}. Anything but a positive integer cannot name
// a stored task.
func taskIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidTaskID
	}
	return id, nil
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), userID(r), taskID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var input models.TaskInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), userID(r), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	patch, err := decodeTaskPatch(r.Body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), userID(r), taskID, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

// decodeTaskPatch decodes an update body. An explicit "dueDate": null
// clears the due date, while an absent key leaves it untouched.
func decodeTaskPatch(body io.Reader) (models.TaskPatch, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return models.TaskPatch{}, decodeError(err)
	}

	var patch models.TaskPatch
	if err = json.Unmarshal(raw, &patch); err != nil {
		return models.TaskPatch{}, decodeError(err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(raw, &fields); err != nil {
		return models.TaskPatch{}, decodeError(err)
	}
	if dueDate, ok := fields["dueDate"]; ok && bytes.Equal(bytes.TrimSpace(dueDate), []byte("null")) {
		patch.DueDate = nil
		patch.ClearDueDate = true
	}

	return patch, nil
}

func decodeError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := taskIDFromURL(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.DeleteTask(r.Context(), userID(r), taskID); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Task deleted"}, http.StatusOK)
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	timeRange := models.AnalyticsRange(r.URL.Query().Get("range"))

	analytics, err := h.services.TaskService.Analytics(r.Context(), userID(r), timeRange)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, analytics, http.StatusOK)
}

// analyzeTask previews advisor output for a draft task. Model failures are
// absorbed by the advisor, so only a bad request fails here.
func (h *Handler) analyzeTask(w http.ResponseWriter, r *http.Request) {
	var request models.AnalyzeRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	suggestion, err := h.services.TaskService.AnalyzeTask(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, suggestion, http.StatusOK)
}
