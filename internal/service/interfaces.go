// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic between the HTTP handlers and
// the store: authentication, task management with analytics and the AI
// assistant features.
package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetCurrentUser(ctx context.Context, userID int64) (models.User, error)
}

// TaskService manages the tasks of one owner per call. userID always comes
// from the authenticated request.
type TaskService interface {
	ListTasks(ctx context.Context, userID int64) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)
	CreateTask(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error

	Analytics(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error)
	AnalyzeTask(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error)
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}

// AssistantService backs the /api/ai routes and the task summary.
type AssistantService interface {
	Chat(ctx context.Context, userID int64, request models.ChatRequest) (string, error)
	Summary(ctx context.Context, userID int64) (models.TaskSummary, error)
	Suggestions(ctx context.Context, userID int64) ([]models.SuggestedTask, error)
	MotivationalMessage(ctx context.Context, userID int64) models.MotivationalMessage
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
