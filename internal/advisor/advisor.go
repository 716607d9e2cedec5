// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type advisor struct {
	cfg        Config
	remote     *remoteClient
	heuristics heuristics
	now        func() time.Time
	logger     *logger.Logger
}

// Option customises an advisor built by [New].
type Option func(*advisor)

// WithClock replaces time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(a *advisor) {
		a.now = now
		a.heuristics.now = now
	}
}

// New builds an Advisor. Without an API key every call is answered by the
// heuristics and no request leaves the process.
func New(cfg Config, log *logger.Logger, opts ...Option) Advisor {
	a := &advisor{
		cfg:        cfg,
		remote:     newRemoteClient(cfg),
		heuristics: heuristics{now: time.Now},
		now:        time.Now,
		logger:     log,
	}
	for _, opt := range opts {
		opt(a)
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("advisor API key not found, AI features will use fallback responses")
	}
	return a
}

type analysisResponse struct {
	Priority      string  `json:"priority"`
	Category      string  `json:"category"`
	Deadline      *string `json:"deadline"`
	EstimatedTime *string `json:"estimatedTime"`
	Suggestions   string  `json:"suggestions"`
}

func (a *advisor) AnalyzeTask(ctx context.Context, title, description string) Outcome[models.Suggestion] {
	log := logger.FromContext(ctx)
	today := models.NewDate(a.now())

	var analysis analysisResponse
	err := a.remote.completeJSON(ctx, analyzeSystemPrompt, analyzePrompt(title, description, today),
		a.cfg.budget(analyzeMaxTokens), &analysis)
	if err != nil {
		log.Warn().Err(err).Str("func", "*advisor.AnalyzeTask").Msg("task analysis failed, using fallback")
		return fallback(a.heuristics.analyze(title, description), err)
	}

	suggestion := models.Suggestion{
		Priority:    models.Priority(analysis.Priority).OrDefault(),
		Category:    models.Category(analysis.Category).OrDefault(),
		Deadline:    upcomingDate(analysis.Deadline, today),
		Suggestions: strings.TrimSpace(analysis.Suggestions),
	}
	if analysis.EstimatedTime != nil && strings.TrimSpace(*analysis.EstimatedTime) != "" {
		estimate := strings.TrimSpace(*analysis.EstimatedTime)
		suggestion.EstimatedTime = &estimate
	}
	if suggestion.Suggestions == "" {
		suggestion.Suggestions = defaultSuggestion
	}

	return remote(suggestion)
}

// upcomingDate parses raw and drops it when unparseable or before today.
func upcomingDate(raw *string, today models.Date) *models.Date {
	if raw == nil {
		return nil
	}
	date, err := models.ParseDate(*raw)
	if err != nil || date.Before(today) {
		return nil
	}
	return &date
}

type summaryResponse struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
}

func (a *advisor) GenerateTaskSummary(ctx context.Context, tasks []models.Task) Outcome[models.TaskSummary] {
	if len(tasks) == 0 {
		return local(models.TaskSummary{Summary: emptySummary, Insights: []string{}})
	}
	log := logger.FromContext(ctx)

	var analysis summaryResponse
	err := a.remote.completeJSON(ctx, summarySystemPrompt, summaryPrompt(tasks), a.cfg.budget(summaryMaxTokens), &analysis)
	if err != nil {
		log.Warn().Err(err).Str("func", "*advisor.GenerateTaskSummary").Msg("summary generation failed, using fallback")
		return fallback(a.heuristics.summary(tasks), err)
	}

	summary := models.TaskSummary{Summary: analysis.Summary, Insights: analysis.Insights}
	if summary.Summary == "" {
		summary.Summary = defaultSummary
	}
	switch {
	case summary.Insights == nil:
		summary.Insights = append([]string(nil), defaultInsights...)
	case len(summary.Insights) > maxInsights:
		summary.Insights = summary.Insights[:maxInsights]
	}

	return remote(summary)
}

type chatResponse struct {
	Response string `json:"response"`
}

func (a *advisor) ChatWithTasks(ctx context.Context, message string, tasks []models.Task) Outcome[string] {
	log := logger.FromContext(ctx)

	if len(tasks) > chatContextTasks {
		tasks = tasks[:chatContextTasks]
	}

	var answer chatResponse
	err := a.remote.completeJSON(ctx, chatSystemPrompt, chatPrompt(message, tasks), a.cfg.budget(chatMaxTokens), &answer)
	if err != nil {
		log.Warn().Err(err).Str("func", "*advisor.ChatWithTasks").Msg("task chat failed, using fallback")
		return fallback(fallbackChatResponse, err)
	}

	if strings.TrimSpace(answer.Response) == "" {
		return remote(defaultChatResponse)
	}
	return remote(answer.Response)
}

type suggestionsResponse struct {
	Suggestions []models.SuggestedTask `json:"suggestions"`
}

func (a *advisor) GenerateTaskSuggestions(ctx context.Context, suggestionCtx models.SuggestionContext) Outcome[[]models.SuggestedTask] {
	log := logger.FromContext(ctx)

	var answer suggestionsResponse
	err := a.remote.completeJSON(ctx, suggestionsSystemPrompt, suggestionsPrompt(suggestionCtx),
		a.cfg.budget(suggestionsMaxTokens), &answer)
	if err != nil {
		log.Warn().Err(err).Str("func", "*advisor.GenerateTaskSuggestions").Msg("task suggestions failed, using fallback")
		return fallback(a.heuristics.suggestions(), err)
	}

	suggestions := make([]models.SuggestedTask, 0, len(answer.Suggestions))
	for _, s := range answer.Suggestions {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		s.Category = s.Category.OrDefault()
		s.Priority = s.Priority.OrDefault()
		suggestions = append(suggestions, s)
	}
	if len(suggestions) == 0 {
		log.Warn().Err(ErrNoSuggestions).Str("func", "*advisor.GenerateTaskSuggestions").Msg("empty task suggestions, using fallback")
		return fallback(a.heuristics.suggestions(), ErrNoSuggestions)
	}

	return remote(suggestions)
}
