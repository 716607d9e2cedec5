// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// A scheme-less address gets "http://".
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// send executes req and maps non-2xx replies to errors.
func (h *httpServerAdapter) send(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request rejected")
		return nil, err
	}
	return resp, nil
}

// do sends req and decodes a 2xx body into out when out is non-nil.
func (h *httpServerAdapter) do(req *resty.Request, method, path string, out any) error {
	resp, err := h.send(req, method, path)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// authenticate posts credentials and keeps the issued token. The body token
// wins over the Authorization header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	resp, err := h.send(h.client.R().SetContext(ctx).SetBody(body), resty.MethodPost, path)
	if err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode %s response: %w", path, err)
	}
	if auth.Token == "" {
		auth.Token, _ = utils.ParseBearerToken(resp.Header().Get("Authorization"))
	}
	if auth.Token == "" {
		return models.AuthResponse{}, ErrNoToken
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", request)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", request)
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var me models.MeResponse
	err := h.do(h.authedRequest(ctx), resty.MethodGet, "/api/auth/me", &me)
	return me.User, err
}

func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := h.do(h.authedRequest(ctx), resty.MethodGet, "/api/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, input models.TaskInput) (models.Task, error) {
	var task models.Task
	err := h.do(h.authedRequest(ctx).SetBody(input), resty.MethodPost, "/api/tasks", &task)
	return task, err
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID int64, patch models.TaskPatch) (models.Task, error) {
	body, err := patchBody(patch)
	if err != nil {
		return models.Task{}, err
	}

	var task models.Task
	err = h.do(h.authedRequest(ctx).SetBody(body), resty.MethodPut, taskPath(taskID), &task)
	return task, err
}

// patchBody renders patch with only its set fields.
func patchBody(patch models.TaskPatch) (map[string]any, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode task patch: %w", err)
	}

	body := map[string]any{}
	if err = json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("encode task patch: %w", err)
	}
	if patch.ClearDueDate {
		body["dueDate"] = nil
	}
	return body, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	return h.do(h.authedRequest(ctx), resty.MethodDelete, taskPath(taskID), nil)
}

func taskPath(taskID int64) string {
	return "/api/tasks/" + strconv.FormatInt(taskID, 10)
}

func (h *httpServerAdapter) Analytics(ctx context.Context, timeRange models.AnalyticsRange) (models.Analytics, error) {
	req := h.authedRequest(ctx)
	if timeRange != "" {
		req.SetQueryParam("range", string(timeRange))
	}

	var analytics models.Analytics
	err := h.do(req, resty.MethodGet, "/api/tasks/analytics", &analytics)
	return analytics, err
}

func (h *httpServerAdapter) AnalyzeTask(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error) {
	var suggestion models.Suggestion
	err := h.do(h.authedRequest(ctx).SetBody(request), resty.MethodPost, "/api/tasks/analyze", &suggestion)
	return suggestion, err
}

func (h *httpServerAdapter) Summary(ctx context.Context) (models.TaskSummary, error) {
	var summary models.TaskSummary
	err := h.do(h.authedRequest(ctx), resty.MethodGet, "/api/tasks/ai-summary", &summary)
	return summary, err
}

func (h *httpServerAdapter) Chat(ctx context.Context, message string) (string, error) {
	var chat models.ChatResponse
	err := h.do(h.authedRequest(ctx).SetBody(models.ChatRequest{Message: message}), resty.MethodPost, "/api/ai/chat", &chat)
	return chat.Response, err
}

func (h *httpServerAdapter) MotivationalMessage(ctx context.Context) (models.MotivationalMessage, error) {
	var message models.MotivationalMessage
	err := h.do(h.authedRequest(ctx), resty.MethodPost, "/api/ai/motivational-message", &message)
	return message, err
}

func (h *httpServerAdapter) Suggestions(ctx context.Context) ([]models.SuggestedTask, error) {
	var suggestions models.SuggestionsResponse
	err := h.do(h.authedRequest(ctx), resty.MethodGet, "/api/ai/suggestions", &suggestions)
	return suggestions.Suggestions, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	err := h.do(h.client.R().SetContext(ctx), resty.MethodGet, "/api/version", &version)
	return version, err
}
