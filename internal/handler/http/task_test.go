// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t, false)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks/1"},
		{http.MethodPut, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
		{http.MethodGet, "/api/tasks/analytics"},
		{http.MethodPost, "/api/tasks/analyze"},
		{http.MethodGet, "/api/tasks/ai-summary"},
		{http.MethodPost, "/api/ai/chat"},
		{http.MethodPost, "/api/ai/motivational-message"},
		{http.MethodGet, "/api/ai/suggestions"},
	}

	for _, route := range routes {
		rr := doRequest(t, router, route.method, route.path, "", false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", route.method, route.path)
	}
}

func TestListTasks(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.listTasksFn = func(ctx context.Context, userID int64) ([]models.Task, error) {
		assert.Equal(t, int64(7), userID)
		return []models.Task{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}, nil
	}

	rr := doRequest(t, router, http.MethodGet, "/api/tasks", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	tasks := decodeBody[[]models.Task](t, rr)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(2), tasks[0].ID)
}

func TestListTasks_EmptyIsArray(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.listTasksFn = func(ctx context.Context, userID int64) ([]models.Task, error) {
		return []models.Task{}, nil
	}

	rr := doRequest(t, router, http.MethodGet, "/api/tasks", "", true)

	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestGetTask(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.getTaskFn = func(ctx context.Context, userID, taskID int64) (models.Task, error) {
		if taskID == 5 {
			return models.Task{ID: 5, UserID: userID}, nil
		}
		return models.Task{}, store.ErrTaskNotFound
	}

	rr := doRequest(t, router, http.MethodGet, "/api/tasks/5", "", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(5), decodeBody[models.Task](t, rr).ID)

	rr = doRequest(t, router, http.MethodGet, "/api/tasks/6", "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found", errorMessage(t, rr))
}

func TestGetTask_NonNumericID(t *testing.T) {
	router, _ := newTestRouter(t, false)

	for _, id := range []string{"abc", "0", "-3", "1.5"} {
		rr := doRequest(t, router, http.MethodGet, "/api/tasks/"+id, "", true)
		assert.Equal(t, http.StatusNotFound, rr.Code, id)
	}
}

func TestCreateTask(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.createTaskFn = func(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error) {
		assert.Equal(t, int64(7), userID)
		assert.Equal(t, "Finish DBMS assignment", input.Title)
		require.NotNil(t, input.DueDate)
		assert.Equal(t, "2026-10-23", input.DueDate.String())
		return models.Task{ID: 9, UserID: userID, Title: input.Title, DueDate: input.DueDate}, nil
	}

	rr := doRequest(t, router, http.MethodPost, "/api/tasks",
		`{"title":"Finish DBMS assignment","dueDate":"2026-10-23","userId":99}`, true)

	require.Equal(t, http.StatusCreated, rr.Code)
	task := decodeBody[models.Task](t, rr)
	assert.Equal(t, int64(9), task.ID)
	assert.Equal(t, int64(7), task.UserID)
}

func TestCreateTask_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad json", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"title":"x","dueDate":"someday"}`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{"title":""}`, err: &validators.ValidationError{Message: "Title is required"}, wantStatus: http.StatusBadRequest},
		{name: "storage", body: `{"title":"x"}`, err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, fakes := newTestRouter(t, false)
			fakes.tasks.createTaskFn = func(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error) {
				return models.Task{}, tt.err
			}

			rr := doRequest(t, router, http.MethodPost, "/api/tasks", tt.body, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateTask(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.updateTaskFn = func(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
		assert.Equal(t, int64(5), taskID)
		require.NotNil(t, patch.Status)
		assert.Equal(t, models.StatusCompleted, *patch.Status)
		assert.Nil(t, patch.Title)
		assert.False(t, patch.ClearDueDate)
		return models.Task{ID: taskID, Status: *patch.Status}, nil
	}

	rr := doRequest(t, router, http.MethodPut, "/api/tasks/5", `{"status":"completed"}`, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.StatusCompleted, decodeBody[models.Task](t, rr).Status)
}

func TestUpdateTask_NullDueDateClears(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.updateTaskFn = func(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
		assert.True(t, patch.ClearDueDate)
		assert.Nil(t, patch.DueDate)
		return models.Task{ID: taskID}, nil
	}

	rr := doRequest(t, router, http.MethodPut, "/api/tasks/5", `{"dueDate": null}`, true)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDecodeTaskPatch(t *testing.T) {
	patch, err := decodeTaskPatch(strings.NewReader(`{"title":"x","dueDate":"2026-11-01"}`))
	require.NoError(t, err)
	assert.Equal(t, "x", *patch.Title)
	assert.Equal(t, "2026-11-01", patch.DueDate.String())
	assert.False(t, patch.ClearDueDate)

	_, err = decodeTaskPatch(strings.NewReader(`{"title":`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestUpdateTask_NotFound(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.updateTaskFn = func(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
		return models.Task{}, store.ErrTaskNotFound
	}

	rr := doRequest(t, router, http.MethodPut, "/api/tasks/5", `{"title":"x"}`, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteTask(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.deleteTaskFn = func(ctx context.Context, userID, taskID int64) error {
		if taskID == 5 {
			return nil
		}
		return store.ErrTaskNotFound
	}

	rr := doRequest(t, router, http.MethodDelete, "/api/tasks/5", "", true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Task deleted", decodeBody[models.MessageResponse](t, rr).Message)

	rr = doRequest(t, router, http.MethodDelete, "/api/tasks/6", "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAnalytics(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.analyticsFn = func(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error) {
		assert.Equal(t, models.RangeMonth, timeRange)
		return models.Analytics{TotalTasks: 4, CompletionRate: 50}, nil
	}

	rr := doRequest(t, router, http.MethodGet, "/api/tasks/analytics?range=month", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	analytics := decodeBody[models.Analytics](t, rr)
	assert.Equal(t, 4, analytics.TotalTasks)
	assert.Equal(t, 50, analytics.CompletionRate)
}

func TestAnalytics_ServerErrorInDevelopment(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.analyticsFn = func(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error) {
		return models.Analytics{}, errors.New("db is on fire")
	}

	rr := doRequest(t, router, http.MethodGet, "/api/tasks/analytics", "", true)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "db is on fire", errorMessage(t, rr))
}

func TestAnalyzeTask(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.analyzeTaskFn = func(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error) {
		assert.Equal(t, "Finish DBMS assignment by Friday, it's really important", request.Title)
		deadline, err := models.ParseDate("2026-10-23")
		require.NoError(t, err)
		estimate := "2-3 hours"
		return models.Suggestion{
			Priority:      models.PriorityHigh,
			Category:      models.CategoryStudy,
			Deadline:      &deadline,
			EstimatedTime: &estimate,
			Suggestions:   "Start with the hardest part.",
		}, nil
	}

	rr := doRequest(t, router, http.MethodPost, "/api/tasks/analyze",
		`{"title":"Finish DBMS assignment by Friday, it's really important"}`, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"priority":"high",
		"category":"study",
		"deadline":"2026-10-23",
		"estimatedTime":"2-3 hours",
		"suggestions":"Start with the hardest part."
	}`, rr.Body.String())
}

func TestAnalyzeTask_MissingTitle(t *testing.T) {
	router, fakes := newTestRouter(t, false)
	fakes.tasks.analyzeTaskFn = func(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error) {
		return models.Suggestion{}, &validators.ValidationError{Field: "title", Message: "Title is required"}
	}

	rr := doRequest(t, router, http.MethodPost, "/api/tasks/analyze", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Title is required", errorMessage(t, rr))
}
