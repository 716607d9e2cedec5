// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

var fixedNow = time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerUserFn   func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	getCurrentUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return f.registerUserFn(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-" + user.Email, UserID: user.ID}, nil
}

// ParseToken accepts testToken as user 7 unless overridden.
func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, UserID: 7}, nil
}

func (f *fakeAuthService) GetCurrentUser(ctx context.Context, userID int64) (models.User, error) {
	return f.getCurrentUserFn(ctx, userID)
}

type fakeTaskService struct {
	listTasksFn   func(ctx context.Context, userID int64) ([]models.Task, error)
	getTaskFn     func(ctx context.Context, userID, taskID int64) (models.Task, error)
	createTaskFn  func(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error)
	updateTaskFn  func(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error)
	deleteTaskFn  func(ctx context.Context, userID, taskID int64) error
	analyticsFn   func(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error)
	analyzeTaskFn func(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error)
}

func (f *fakeTaskService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return f.listTasksFn(ctx, userID)
}

func (f *fakeTaskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return f.getTaskFn(ctx, userID, taskID)
}

func (f *fakeTaskService) CreateTask(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error) {
	return f.createTaskFn(ctx, userID, input)
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	return f.updateTaskFn(ctx, userID, taskID, patch)
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	return f.deleteTaskFn(ctx, userID, taskID)
}

func (f *fakeTaskService) Analytics(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error) {
	return f.analyticsFn(ctx, userID, timeRange)
}

func (f *fakeTaskService) AnalyzeTask(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error) {
	return f.analyzeTaskFn(ctx, request)
}

type fakeAssistantService struct {
	chatFn        func(ctx context.Context, userID int64, request models.ChatRequest) (string, error)
	summaryFn     func(ctx context.Context, userID int64) (models.TaskSummary, error)
	suggestionsFn func(ctx context.Context, userID int64) ([]models.SuggestedTask, error)
	motivationFn  func(ctx context.Context, userID int64) models.MotivationalMessage
}

func (f *fakeAssistantService) Chat(ctx context.Context, userID int64, request models.ChatRequest) (string, error) {
	return f.chatFn(ctx, userID, request)
}

func (f *fakeAssistantService) Summary(ctx context.Context, userID int64) (models.TaskSummary, error) {
	return f.summaryFn(ctx, userID)
}

func (f *fakeAssistantService) Suggestions(ctx context.Context, userID int64) ([]models.SuggestedTask, error) {
	return f.suggestionsFn(ctx, userID)
}

func (f *fakeAssistantService) MotivationalMessage(ctx context.Context, userID int64) models.MotivationalMessage {
	return f.motivationFn(ctx, userID)
}

type fakeAppInfoService struct {
	version models.VersionResponse
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth      *fakeAuthService
	tasks     *fakeTaskService
	assistant *fakeAssistantService
}

func newTestRouter(t *testing.T, production bool) (http.Handler, *testServices) {
	t.Helper()

	fakes := &testServices{
		auth:      &fakeAuthService{},
		tasks:     &fakeTaskService{},
		assistant: &fakeAssistantService{},
	}
	services := &service.Services{
		AuthService:      fakes.auth,
		TaskService:      fakes.tasks,
		AssistantService: fakes.assistant,
		AppInfoService:   &fakeAppInfoService{version: models.VersionResponse{Version: "1.2.3", Date: "N/A", Commit: "N/A"}},
	}

	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":5000", AllowedOrigins: []string{"http://localhost:5173"}},
	}
	if production {
		cfg.App.Environment = "production"
	}

	h := NewHandler(services, cfg, logger.Nop())
	h.now = func() time.Time { return fixedNow }
	return h.Init(), fakes
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr).Message
}

func newRequest(method, path, authorization string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
