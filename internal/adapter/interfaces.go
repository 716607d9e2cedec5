// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the task keeper REST API on behalf of the
// terminal client.
//
// [ServerAdapter] hides the transport. Non-2xx replies are mapped to the
// sentinel errors of errors.go so callers can branch with [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client view of the REST API. Register and Login
// store the issued token; every other call except Version sends it.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	Me(ctx context.Context) (models.User, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, input models.TaskInput) (models.Task, error)
	// UpdateTask sends only the non-nil fields of patch; ClearDueDate is
	// sent as an explicit null due date.
	UpdateTask(ctx context.Context, taskID int64, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error

	Analytics(ctx context.Context, timeRange models.AnalyticsRange) (models.Analytics, error)
	AnalyzeTask(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error)
	Summary(ctx context.Context) (models.TaskSummary, error)
	Chat(ctx context.Context, message string) (string, error)
	MotivationalMessage(ctx context.Context) (models.MotivationalMessage, error)
	Suggestions(ctx context.Context) ([]models.SuggestedTask, error)

	Version(ctx context.Context) (models.VersionResponse, error)
}
