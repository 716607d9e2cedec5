// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users and tasks in PostgreSQL or SQLite.
//
// Every task statement filters by (id, user_id), so a caller can never see
// or change a task owned by somebody else. Task mutations and the owner's
// stats counters are written in one transaction.
package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks a user up by lower-cased email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TaskRepository stores tasks scoped by owner.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// ErrorClassificator maps driver errors onto a small driver-neutral set.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
