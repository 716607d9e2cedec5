// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/advisor"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	summaryTasksLimit     = 20
	chatTasksLimit        = 10
	suggestionTasksLimit  = 20
	motivationTasksLimit  = 10
	activityWindow        = 7 * 24 * time.Hour
	highActivityTasks     = 10
	moderateActivityTasks = 3
	excellentRate         = 70
)

const (
	noTasksSummary     = "You haven't created any tasks yet. Start by adding your first task!"
	unavailableSummary = "Keep up the great work on your tasks!"
)

var unavailableInsights = []string{
	"Try breaking large tasks into smaller steps",
	"Set realistic deadlines",
}

type assistantService struct {
	taskRepository store.TaskRepository
	advisor        advisor.Advisor
	validator      validators.Validator
	now            func() time.Time
	logger         *logger.Logger
}

// NewAssistantService returns the AssistantService. Every operation
// answers even when the tasks cannot be loaded or the model is down.
func NewAssistantService(taskRepository store.TaskRepository, adv advisor.Advisor, logger *logger.Logger) AssistantService {
	return &assistantService{
		taskRepository: taskRepository,
		advisor:        adv,
		validator:      validators.NewRequestValidator(),
		now:            time.Now,
		logger:         logger,
	}
}

func (s *assistantService) recentTasks(ctx context.Context, userID int64, limit uint64) ([]models.Task, error) {
	if userID <= 0 {
		return nil, ErrNoUserID
	}
	return s.taskRepository.ListTasks(ctx, models.TaskFilter{UserID: userID, Limit: limit, NewestFirst: true})
}

// Chat answers a free-form question using the newest tasks as context.
func (s *assistantService) Chat(ctx context.Context, userID int64, request models.ChatRequest) (string, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("error during chat request validation: %w", err)
	}

	log := logger.FromContext(ctx)

	tasks, err := s.recentTasks(ctx, userID, chatTasksLimit)
	if err != nil {
		log.Err(err).Str("func", "*assistantService.Chat").Msg("loading chat context failed")
		return advisor.FallbackChatResponse(), nil
	}

	outcome := s.advisor.ChatWithTasks(ctx, strings.TrimSpace(request.Message), tasks)
	if outcome.Degraded() {
		log.Debug().Err(outcome.Reason).Msg("chat answered by fallback")
	}
	return outcome.Value, nil
}

func (s *assistantService) Summary(ctx context.Context, userID int64) (models.TaskSummary, error) {
	log := logger.FromContext(ctx)

	tasks, err := s.recentTasks(ctx, userID, summaryTasksLimit)
	if err != nil {
		log.Err(err).Str("func", "*assistantService.Summary").Msg("loading tasks for summary failed")
		return models.TaskSummary{
			Summary:  unavailableSummary,
			Insights: append([]string(nil), unavailableInsights...),
		}, nil
	}
	if len(tasks) == 0 {
		return models.TaskSummary{Summary: noTasksSummary, Insights: []string{}}, nil
	}

	outcome := s.advisor.GenerateTaskSummary(ctx, tasks)
	if outcome.Degraded() {
		log.Debug().Err(outcome.Reason).Msg("summary answered by fallback")
	}
	return outcome.Value, nil
}

// Suggestions proposes new tasks shaped by the owner's recent habits.
func (s *assistantService) Suggestions(ctx context.Context, userID int64) ([]models.SuggestedTask, error) {
	log := logger.FromContext(ctx)

	tasks, err := s.recentTasks(ctx, userID, suggestionTasksLimit)
	if err != nil {
		log.Err(err).Str("func", "*assistantService.Suggestions").Msg("loading tasks for suggestions failed")
		tasks = nil
	}

	outcome := s.advisor.GenerateTaskSuggestions(ctx, suggestionContext(tasks, s.now()))
	if outcome.Degraded() {
		log.Debug().Err(outcome.Reason).Msg("suggestions answered by fallback")
	}
	if outcome.Value == nil {
		return []models.SuggestedTask{}, nil
	}
	return outcome.Value, nil
}

func suggestionContext(tasks []models.Task, now time.Time) models.SuggestionContext {
	suggestionCtx := models.SuggestionContext{
		Categories: []models.Category{},
		Priorities: []models.Priority{},
	}

	seenCategories := make(map[models.Category]bool)
	seenPriorities := make(map[models.Priority]bool)
	weekAgo := now.Add(-activityWindow)
	lastWeek := 0
	for _, task := range tasks {
		if task.Category != "" && !seenCategories[task.Category] {
			seenCategories[task.Category] = true
			suggestionCtx.Categories = append(suggestionCtx.Categories, task.Category)
		}
		if task.Priority != "" && !seenPriorities[task.Priority] {
			seenPriorities[task.Priority] = true
			suggestionCtx.Priorities = append(suggestionCtx.Priorities, task.Priority)
		}
		if !task.CreatedAt.Before(weekAgo) {
			lastWeek++
		}
	}

	switch {
	case lastWeek >= highActivityTasks:
		suggestionCtx.ActivityLevel = models.ActivityHigh
	case lastWeek >= moderateActivityTasks:
		suggestionCtx.ActivityLevel = models.ActivityModerate
	default:
		suggestionCtx.ActivityLevel = models.ActivityLow
	}

	return suggestionCtx
}

// MotivationalMessage never fails; a storage error yields a generic cheer.
func (s *assistantService) MotivationalMessage(ctx context.Context, userID int64) models.MotivationalMessage {
	tasks, err := s.recentTasks(ctx, userID, motivationTasksLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*assistantService.MotivationalMessage").Msg("loading tasks for motivation failed")
		return models.MotivationalMessage{Message: "You're awesome! Keep pushing forward!", Emoji: "🌟"}
	}
	return motivate(tasks)
}

func motivate(tasks []models.Task) models.MotivationalMessage {
	completed := 0
	for _, task := range tasks {
		if task.IsCompleted() {
			completed++
		}
	}
	stats := models.MotivationStats{
		Total:          len(tasks),
		Completed:      completed,
		CompletionRate: models.CompletionRate(completed, len(tasks)),
	}

	switch {
	case stats.Total == 0:
		return models.MotivationalMessage{
			Message: "Ready to start your productivity journey? Let's create your first task!",
			Emoji:   "🚀",
			Stats:   stats,
		}
	case stats.Completed == stats.Total:
		return models.MotivationalMessage{
			Message: "Amazing! You've completed all your recent tasks! Time for new challenges!",
			Emoji:   "🎉",
			Stats:   stats,
		}
	case stats.CompletionRate > excellentRate:
		return models.MotivationalMessage{
			Message: "Excellent work! You're crushing your tasks with great consistency!",
			Emoji:   "⚡",
			Stats:   stats,
		}
	default:
		return models.MotivationalMessage{
			Message: "You're doing great! Keep up the momentum!",
			Emoji:   "💪",
			Stats:   stats,
		}
	}
}
