// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// modelServer fakes a chat-completions endpoint. reply returns the HTTP
// status and the content of the first choice.
type modelServer struct {
	*httptest.Server
	calls    atomic.Int32
	requests chan completionRequest
}

func newModelServer(t *testing.T, reply func(req completionRequest) (int, string)) *modelServer {
	t.Helper()
	ms := &modelServer{requests: make(chan completionRequest, 8)}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.calls.Add(1)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, chatCompletionsPath, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		ms.requests <- req

		status, content := reply(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= http.StatusBadRequest {
			_, _ = w.Write([]byte(`{"message":"nope"}`))
			return
		}
		body, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(ms.Close)
	return ms
}

func newTestAdvisor(baseURL string) Advisor {
	return New(Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
		Timeout: time.Second,
	}, logger.Nop(), WithClock(fixedClock(saturday)))
}

func jsonContent(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}

// ── AnalyzeTask ──────────────────────────────────────────────────────────────

func TestAnalyzeTask_NoAPIKeyUsesFallback(t *testing.T) {
	a := New(Config{BaseURL: "http://127.0.0.1:1", Model: "m", Timeout: time.Second}, logger.Nop(), WithClock(fixedClock(saturday)))

	got := a.AnalyzeTask(context.Background(), "Finish DBMS assignment by Friday, it's really important", "")

	assert.True(t, got.Degraded())
	assert.ErrorIs(t, got.Reason, ErrAPIKeyMissing)
	assert.Equal(t, models.PriorityHigh, got.Value.Priority)
	assert.Equal(t, models.CategoryStudy, got.Value.Category)
	require.NotNil(t, got.Value.Deadline)
	assert.Equal(t, "2026-10-23", got.Value.Deadline.String())
}

func TestAnalyzeTask_Remote(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) {
		return http.StatusOK, jsonContent(map[string]any{
			"priority":      "high",
			"category":      "work",
			"deadline":      "2026-10-20",
			"estimatedTime": "2 hours",
			"suggestions":   "Start with the outline.",
		})
	})

	got := newTestAdvisor(ms.URL).AnalyzeTask(context.Background(), "Prepare slides", "for Tuesday")

	require.Equal(t, SourceRemote, got.Source)
	assert.NoError(t, got.Reason)
	assert.Equal(t, models.PriorityHigh, got.Value.Priority)
	assert.Equal(t, models.CategoryWork, got.Value.Category)
	require.NotNil(t, got.Value.Deadline)
	assert.Equal(t, "2026-10-20", got.Value.Deadline.String())
	require.NotNil(t, got.Value.EstimatedTime)
	assert.Equal(t, "2 hours", *got.Value.EstimatedTime)
	assert.Equal(t, "Start with the outline.", got.Value.Suggestions)

	req := <-ms.requests
	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, analyzeMaxTokens, req.MaxTokens)
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	assert.Equal(t, "json_object", req.ResponseFormat.Type)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, `Task: "Prepare slides"`)
}

func TestAnalyzeTask_RemoteValuesAreClamped(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) {
		return http.StatusOK, jsonContent(map[string]any{
			"priority":      "extreme",
			"category":      "chores",
			"deadline":      "2026-10-16",
			"estimatedTime": "",
			"suggestions":   "",
		})
	})

	got := newTestAdvisor(ms.URL).AnalyzeTask(context.Background(), "Something", "")

	require.Equal(t, SourceRemote, got.Source)
	assert.Equal(t, models.PriorityMedium, got.Value.Priority)
	assert.Equal(t, models.CategoryPersonal, got.Value.Category)
	assert.Nil(t, got.Value.Deadline, "past deadlines are dropped")
	assert.Nil(t, got.Value.EstimatedTime)
	assert.Equal(t, "Break this task into smaller steps for easier completion.", got.Value.Suggestions)
}

func TestAnalyzeTask_TodayAndTimestampDeadlines(t *testing.T) {
	for _, deadline := range []string{"2026-10-17", "2026-10-17T18:00:00Z"} {
		t.Run(deadline, func(t *testing.T) {
			ms := newModelServer(t, func(completionRequest) (int, string) {
				return http.StatusOK, jsonContent(map[string]any{"deadline": deadline})
			})

			got := newTestAdvisor(ms.URL).AnalyzeTask(context.Background(), "x", "")

			require.NotNil(t, got.Value.Deadline)
			assert.Equal(t, "2026-10-17", got.Value.Deadline.String())
		})
	}
}

func TestAnalyzeTask_RemoteFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		content string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnexpectedStatus},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnexpectedStatus},
		{name: "not json", status: http.StatusOK, content: "definitely not json", wantErr: ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := newModelServer(t, func(completionRequest) (int, string) { return tt.status, tt.content })

			got := newTestAdvisor(ms.URL).AnalyzeTask(context.Background(), "Gym session", "")

			assert.True(t, got.Degraded())
			assert.ErrorIs(t, got.Reason, tt.wantErr)
			assert.Equal(t, models.CategoryHealth, got.Value.Category)
			assert.Equal(t, int32(1), ms.calls.Load(), "no retries")
		})
	}
}

func TestAnalyzeTask_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	got := newTestAdvisor(srv.URL).AnalyzeTask(context.Background(), "x", "")

	assert.ErrorIs(t, got.Reason, ErrEmptyChoices)
}

func TestAnalyzeTask_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	a := New(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "m", Timeout: 50 * time.Millisecond},
		logger.Nop(), WithClock(fixedClock(saturday)))

	start := time.Now()
	got := a.AnalyzeTask(context.Background(), "x", "")

	assert.ErrorIs(t, got.Reason, ErrRequestFailed)
	assert.Less(t, time.Since(start), time.Second)
}

func TestAnalyzeTask_MaxTokensCap(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) { return http.StatusOK, "{}" })
	a := New(Config{APIKey: "test-key", BaseURL: ms.URL, Model: "m", Timeout: time.Second, MaxTokens: 100}, logger.Nop())

	a.AnalyzeTask(context.Background(), "x", "")

	req := <-ms.requests
	assert.Equal(t, 100, req.MaxTokens)
}

// ── GenerateTaskSummary ──────────────────────────────────────────────────────

func TestGenerateTaskSummary_NoTasksIsLocal(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) { return http.StatusOK, "{}" })

	got := newTestAdvisor(ms.URL).GenerateTaskSummary(context.Background(), nil)

	assert.Equal(t, SourceLocal, got.Source)
	assert.Equal(t, "No tasks to analyze yet. Start creating tasks to get AI insights!", got.Value.Summary)
	assert.Empty(t, got.Value.Insights)
	assert.Zero(t, ms.calls.Load())
}

func TestGenerateTaskSummary_RemoteTruncatesInsights(t *testing.T) {
	ms := newModelServer(t, func(req completionRequest) (int, string) {
		assert.Equal(t, summaryMaxTokens, req.MaxTokens)
		return http.StatusOK, jsonContent(map[string]any{
			"summary":  "Great week.",
			"insights": []string{"1", "2", "3", "4", "5", "6", "7"},
		})
	})

	got := newTestAdvisor(ms.URL).GenerateTaskSummary(context.Background(), []models.Task{{Title: "a"}})

	assert.Equal(t, SourceRemote, got.Source)
	assert.Equal(t, "Great week.", got.Value.Summary)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got.Value.Insights)
}

func TestGenerateTaskSummary_RemoteDefaults(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) { return http.StatusOK, "{}" })

	got := newTestAdvisor(ms.URL).GenerateTaskSummary(context.Background(), []models.Task{{Title: "a"}})

	assert.Equal(t, defaultSummary, got.Value.Summary)
	assert.Equal(t, defaultInsights, got.Value.Insights)
}

func TestGenerateTaskSummary_Fallback(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) { return http.StatusBadGateway, "" })
	tasks := []models.Task{
		{Category: models.CategoryHealth, Status: models.StatusCompleted},
		{Category: models.CategoryHealth, Status: models.StatusCompleted},
	}

	got := newTestAdvisor(ms.URL).GenerateTaskSummary(context.Background(), tasks)

	assert.True(t, got.Degraded())
	assert.Contains(t, got.Value.Summary, "(100% completion rate)")
	assert.Contains(t, got.Value.Summary, "health-related")
	assert.Equal(t, "Excellent completion rate of 100%", got.Value.Insights[0])
}

// ── ChatWithTasks ────────────────────────────────────────────────────────────

func TestChatWithTasks_LimitsContext(t *testing.T) {
	ms := newModelServer(t, func(req completionRequest) (int, string) {
		assert.Equal(t, chatMaxTokens, req.MaxTokens)
		return http.StatusOK, jsonContent(map[string]string{"response": "Do the gym first."})
	})
	tasks := make([]models.Task, 15)
	for i := range tasks {
		tasks[i] = models.Task{Title: fmt.Sprintf("task %d", i+1), Status: models.StatusPending}
	}

	got := newTestAdvisor(ms.URL).ChatWithTasks(context.Background(), "What first?", tasks)

	assert.Equal(t, SourceRemote, got.Source)
	assert.Equal(t, "Do the gym first.", got.Value)

	prompt := (<-ms.requests).Messages[1].Content
	assert.Contains(t, prompt, `10. "task 10"`)
	assert.NotContains(t, prompt, `11. "task 11"`)
	assert.Contains(t, prompt, `User question: "What first?"`)
}

func TestChatWithTasks_EmptyResponse(t *testing.T) {
	ms := newModelServer(t, func(completionRequest) (int, string) { return http.StatusOK, `{"response":"  "}` })

	got := newTestAdvisor(ms.URL).ChatWithTasks(context.Background(), "hi", nil)

	assert.Equal(t, SourceRemote, got.Source)
	assert.Equal(t, defaultChatResponse, got.Value)
}

func TestChatWithTasks_Fallback(t *testing.T) {
	a := New(Config{}, logger.Nop())

	got := a.ChatWithTasks(context.Background(), "hi", nil)

	assert.True(t, got.Degraded())
	assert.Equal(t, FallbackChatResponse(), got.Value)
}

// ── GenerateTaskSuggestions ──────────────────────────────────────────────────

func TestGenerateTaskSuggestions_Remote(t *testing.T) {
	ms := newModelServer(t, func(req completionRequest) (int, string) {
		assert.Equal(t, suggestionsMaxTokens, req.MaxTokens)
		assert.Contains(t, req.Messages[1].Content, "Recent categories: work, study")
		assert.Contains(t, req.Messages[1].Content, "Activity level: high")
		return http.StatusOK, jsonContent(map[string]any{
			"suggestions": []map[string]string{
				{"title": "Plan sprint", "category": "work", "priority": "high", "reason": "Stay ahead"},
				{"title": "Stretch", "category": "fitness", "priority": "urgent", "reason": "Move"},
				{"title": "  ", "category": "work"},
			},
		})
	})

	got := newTestAdvisor(ms.URL).GenerateTaskSuggestions(context.Background(), models.SuggestionContext{
		Categories:    []models.Category{models.CategoryWork, models.CategoryStudy},
		Priorities:    []models.Priority{models.PriorityHigh},
		ActivityLevel: models.ActivityHigh,
	})

	require.Equal(t, SourceRemote, got.Source)
	require.Len(t, got.Value, 2)
	assert.Equal(t, "Stay ahead", got.Value[0].Reason)
	assert.Equal(t, models.CategoryPersonal, got.Value[1].Category)
	assert.Equal(t, models.PriorityMedium, got.Value[1].Priority)
}

func TestGenerateTaskSuggestions_Fallback(t *testing.T) {
	got := New(Config{}, logger.Nop()).GenerateTaskSuggestions(context.Background(), models.SuggestionContext{})

	assert.True(t, got.Degraded())
	assert.Len(t, got.Value, 3)
}

func TestGenerateTaskSuggestions_NoUsableTitles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "blank titles", content: jsonContent(map[string]any{
			"suggestions": []map[string]string{{"title": " "}, {"title": "", "category": "work"}},
		})},
		{name: "empty list", content: `{"suggestions":[]}`},
		{name: "missing field", content: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := newModelServer(t, func(completionRequest) (int, string) {
				return http.StatusOK, tt.content
			})

			got := newTestAdvisor(ms.URL).GenerateTaskSuggestions(context.Background(), models.SuggestionContext{})

			assert.Equal(t, SourceFallback, got.Source)
			assert.ErrorIs(t, got.Reason, ErrNoSuggestions)
			assert.Len(t, got.Value, 3)
		})
	}
}

func TestSuggestionsPrompt_Defaults(t *testing.T) {
	prompt := suggestionsPrompt(models.SuggestionContext{})

	assert.True(t, strings.Contains(prompt, "Recent categories: general"))
	assert.True(t, strings.Contains(prompt, "Common priorities: medium"))
	assert.True(t, strings.Contains(prompt, "Activity level: moderate"))
}

func TestDescribeTasks(t *testing.T) {
	due := models.NewDate(saturday)
	got := describeTasks([]models.Task{
		{Title: "Read", Category: models.CategoryStudy, Priority: models.PriorityLow, Status: models.StatusPending, DueDate: &due},
		{Title: "Run", Category: models.CategoryHealth, Priority: models.PriorityHigh, Status: models.StatusCompleted},
	})

	assert.Equal(t, "1. \"Read\" - Category: study, Priority: low, Status: pending, Due: 2026-10-17\n"+
		"2. \"Run\" - Category: health, Priority: high, Status: completed", got)
}

func TestConfigBudget(t *testing.T) {
	assert.Equal(t, 400, Config{}.budget(400))
	assert.Equal(t, 400, Config{MaxTokens: 1000}.budget(400))
	assert.Equal(t, 250, Config{MaxTokens: 250}.budget(600))
}
