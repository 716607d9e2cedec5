// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskValidationService rejects malformed input before it reaches the
// wrapped TaskService.
type taskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &taskValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *taskValidationService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	if userID <= 0 {
		return nil, ErrNoUserID
	}
	return v.inner.ListTasks(ctx, userID)
}

func (v *taskValidationService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	if userID <= 0 {
		return models.Task{}, ErrNoUserID
	}
	return v.inner.GetTask(ctx, userID, taskID)
}

func (v *taskValidationService) CreateTask(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error) {
	if userID <= 0 {
		return models.Task{}, ErrNoUserID
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before saving: %w", err)
	}
	return v.inner.CreateTask(ctx, userID, input)
}

func (v *taskValidationService) UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if userID <= 0 {
		return models.Task{}, ErrNoUserID
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before update: %w", err)
	}
	return v.inner.UpdateTask(ctx, userID, taskID, patch)
}

func (v *taskValidationService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if userID <= 0 {
		return ErrNoUserID
	}
	return v.inner.DeleteTask(ctx, userID, taskID)
}

func (v *taskValidationService) Analytics(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error) {
	if userID <= 0 {
		return models.Analytics{}, ErrNoUserID
	}
	return v.inner.Analytics(ctx, userID, timeRange)
}

func (v *taskValidationService) AnalyzeTask(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Suggestion{}, fmt.Errorf("error during analyze request validation: %w", err)
	}
	return v.inner.AnalyzeTask(ctx, request)
}

func (v *taskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}
