// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/advisor"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

// recentTasksInAnalytics is how many tasks the analytics view lists.
const recentTasksInAnalytics = 6

type taskService struct {
	taskRepository store.TaskRepository
	advisor        advisor.Advisor
	now            func() time.Time
	logger         *logger.Logger
}

// NewTaskService returns the TaskService backed by the task repository.
// Inputs are expected to be validated by a wrapping TaskServiceWrapper.
func NewTaskService(taskRepository store.TaskRepository, adv advisor.Advisor, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		advisor:        adv,
		now:            time.Now,
		logger:         logger,
	}
}

// ListTasks returns every task of the owner, newest first.
func (s *taskService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	tasks, err := s.taskRepository.ListTasks(ctx, models.TaskFilter{UserID: userID, NewestFirst: true})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing tasks failed")
		return nil, fmt.Errorf("listing tasks failed: %w", err)
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("getting task failed: %w", err)
	}
	return task, nil
}

// CreateTask stores a new task. Fields the client left empty are filled
// from the advisor when it has something to offer; a degraded advisor
// still contributes its heuristic values and never fails the call.
func (s *taskService) CreateTask(ctx context.Context, userID int64, input models.TaskInput) (models.Task, error) {
	log := logger.FromContext(ctx)

	task := models.Task{
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Priority:      input.Priority,
		Category:      input.Category,
		Status:        input.Status.OrDefault(),
		DueDate:       input.DueDate,
		AISuggestions: strings.TrimSpace(input.AISuggestions),
		EstimatedTime: strings.TrimSpace(input.EstimatedTime),
	}

	if needsAdvice(task) {
		outcome := s.advisor.AnalyzeTask(ctx, task.Title, task.Description)
		if outcome.Degraded() {
			log.Debug().Err(outcome.Reason).Msg("task created with fallback advice")
		}
		applyAdvice(&task, outcome.Value)
	}
	task.Priority = task.Priority.OrDefault()
	task.Category = task.Category.OrDefault()

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("task creation failed")
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	return created, nil
}

func needsAdvice(task models.Task) bool {
	return task.Priority == "" || task.Category == "" || task.DueDate == nil ||
		task.AISuggestions == "" || task.EstimatedTime == ""
}

// applyAdvice copies advice into the fields the client did not set.
func applyAdvice(task *models.Task, advice models.Suggestion) {
	if task.Priority == "" {
		task.Priority = advice.Priority
	}
	if task.Category == "" {
		task.Category = advice.Category
	}
	if task.DueDate == nil && advice.Deadline != nil {
		due := *advice.Deadline
		task.DueDate = &due
	}
	if task.AISuggestions == "" {
		task.AISuggestions = advice.Suggestions
	}
	if task.EstimatedTime == "" && advice.EstimatedTime != nil {
		task.EstimatedTime = *advice.EstimatedTime
	}
}

// UpdateTask applies patch to one task of the owner.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID int64, patch models.TaskPatch) (models.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}

	updated, err := s.taskRepository.UpdateTask(ctx, models.TaskUpdate{ID: taskID, UserID: userID, TaskPatch: patch})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("task_id", taskID).Msg("task update failed")
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}
	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if err := s.taskRepository.DeleteTask(ctx, userID, taskID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Int64("task_id", taskID).Msg("task deletion failed")
		return fmt.Errorf("task deletion failed: %w", err)
	}
	return nil
}

// Analytics aggregates the tasks created within the trailing window.
func (s *taskService) Analytics(ctx context.Context, userID int64, timeRange models.AnalyticsRange) (models.Analytics, error) {
	days := timeRange.Days()
	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)

	tasks, err := s.taskRepository.ListTasks(ctx, models.TaskFilter{UserID: userID, CreatedSince: &since})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("analytics query failed")
		return models.Analytics{}, fmt.Errorf("analytics query failed: %w", err)
	}

	return buildAnalytics(tasks, days), nil
}

func buildAnalytics(tasks []models.Task, days int) models.Analytics {
	total := len(tasks)
	completed := 0
	byCategory := make(map[models.Category]int)
	byPriority := make(map[models.Priority]int)
	for _, task := range tasks {
		if task.IsCompleted() {
			completed++
		}
		byCategory[task.Category]++
		byPriority[task.Priority]++
	}

	rate := models.CompletionRate(completed, total)

	analytics := models.Analytics{
		TotalTasks:         total,
		CompletedTasks:     completed,
		CompletionRate:     rate,
		AverageTasksPerDay: math.Round(float64(total)/float64(days)*10) / 10,
		ProductivityScore:  rate,
		TasksByCategory:    make([]models.CategoryCount, 0, len(byCategory)),
		TasksByPriority:    make([]models.PriorityCount, 0, len(byPriority)),
	}

	for _, category := range models.Categories {
		if n := byCategory[category]; n > 0 {
			analytics.TasksByCategory = append(analytics.TasksByCategory, models.CategoryCount{Category: category, Count: n})
		}
	}
	for _, priority := range models.Priorities {
		if n := byPriority[priority]; n > 0 {
			analytics.TasksByPriority = append(analytics.TasksByPriority, models.PriorityCount{Priority: priority, Count: n})
		}
	}

	recent := tasks
	if len(recent) > recentTasksInAnalytics {
		recent = recent[len(recent)-recentTasksInAnalytics:]
	}
	analytics.RecentTasks = append(make([]models.Task, 0, len(recent)), recent...)

	return analytics
}

// AnalyzeTask previews the advice CreateTask would apply.
func (s *taskService) AnalyzeTask(ctx context.Context, request models.AnalyzeRequest) (models.Suggestion, error) {
	outcome := s.advisor.AnalyzeTask(ctx, strings.TrimSpace(request.Title), strings.TrimSpace(request.Description))
	if outcome.Degraded() {
		logger.FromContext(ctx).Debug().Err(outcome.Reason).Msg("analysis answered by fallback")
	}
	return outcome.Value, nil
}
