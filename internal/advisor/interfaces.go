// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package advisor produces task advice from a remote chat-completions model
// and falls back to local keyword heuristics whenever the model cannot be
// used. No operation returns an error: every result is an [Outcome] that
// records where the value came from.
package advisor

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/advisor_mock.go -package=mock

// Advisor is the AI advisory service.
type Advisor interface {
	// AnalyzeTask proposes priority, category, deadline, estimate and a tip.
	AnalyzeTask(ctx context.Context, title, description string) Outcome[models.Suggestion]

	// GenerateTaskSummary narrates a list of recent tasks.
	GenerateTaskSummary(ctx context.Context, tasks []models.Task) Outcome[models.TaskSummary]

	// ChatWithTasks answers a free-form question about the given tasks.
	ChatWithTasks(ctx context.Context, message string, tasks []models.Task) Outcome[string]

	// GenerateTaskSuggestions proposes new tasks that fit the user's habits.
	GenerateTaskSuggestions(ctx context.Context, suggestionCtx models.SuggestionContext) Outcome[[]models.SuggestedTask]
}
