// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/models"
)

// saturday is 2026-10-17, a Saturday.
var saturday = time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestHeuristicsAnalyze_AssignmentByFriday(t *testing.T) {
	h := heuristics{now: fixedClock(saturday)}

	got := h.analyze("Finish DBMS assignment by Friday, it's really important", "")

	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.CategoryStudy, got.Category)
	require.NotNil(t, got.Deadline)
	assert.Equal(t, "2026-10-23", got.Deadline.String())
	require.NotNil(t, got.EstimatedTime)
	assert.Equal(t, "2-3 hours", *got.EstimatedTime)
	assert.Equal(t, "Set a timer and take breaks every 25 minutes (Pomodoro technique).", got.Suggestions)
}

func TestHeuristicsAnalyze(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    models.Priority
		category    models.Category
		deadline    string
		estimate    string
	}{
		{
			name:     "plain task",
			title:    "Buy groceries",
			priority: models.PriorityMedium,
			category: models.CategoryPersonal,
			estimate: "30 minutes",
		},
		{
			name:     "urgent client meeting today",
			title:    "URGENT: client meeting today",
			priority: models.PriorityHigh,
			category: models.CategoryWork,
			deadline: "2026-10-17",
			estimate: "1 hour",
		},
		{
			name:        "low priority phrase",
			title:       "Clean the garage",
			description: "low priority, maybe tomorrow",
			priority:    models.PriorityLow,
			category:    models.CategoryPersonal,
			deadline:    "2026-10-18",
			estimate:    "30 minutes",
		},
		{
			name:     "homework is study not work",
			title:    "Math homework",
			priority: models.PriorityMedium,
			category: models.CategoryStudy,
			estimate: "30 minutes",
		},
		{
			name:     "workout is health not work",
			title:    "Quick workout",
			priority: models.PriorityMedium,
			category: models.CategoryHealth,
			estimate: "15 minutes",
		},
		{
			name:     "plural keyword",
			title:    "Answer emails",
			priority: models.PriorityMedium,
			category: models.CategoryWork,
			estimate: "30 minutes",
		},
		{
			name:     "research",
			title:    "Research vacation spots",
			priority: models.PriorityMedium,
			category: models.CategoryPersonal,
			estimate: "1-2 hours",
		},
	}

	h := heuristics{now: fixedClock(saturday)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.analyze(tt.title, tt.description)

			assert.Equal(t, tt.priority, got.Priority)
			assert.Equal(t, tt.category, got.Category)
			if tt.deadline == "" {
				assert.Nil(t, got.Deadline)
			} else {
				require.NotNil(t, got.Deadline)
				assert.Equal(t, tt.deadline, got.Deadline.String())
			}
			require.NotNil(t, got.EstimatedTime)
			assert.Equal(t, tt.estimate, *got.EstimatedTime)
			assert.NotEmpty(t, got.Suggestions)
		})
	}
}

func TestNextWeekday_SameDay(t *testing.T) {
	friday := models.NewDate(time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-10-23", nextWeekday(friday, time.Friday).String())
	assert.Equal(t, "2026-10-30", nextWeekday(friday.AddDays(1), time.Friday).String())
}

func TestHasKeyword(t *testing.T) {
	tokens := words("Low priority: call mom when free!")

	assert.True(t, hasKeyword(tokens, "low priority"))
	assert.True(t, hasKeyword(tokens, "when free"))
	assert.True(t, hasKeyword(tokens, "call"))
	assert.False(t, hasKeyword(tokens, "priority low"))
	assert.False(t, hasKeyword(tokens, ""))
	assert.False(t, hasKeyword(words("homework"), "work"))
}

func TestHeuristicsSummary(t *testing.T) {
	h := heuristics{now: fixedClock(saturday)}
	tasks := []models.Task{
		{Category: models.CategoryWork, Status: models.StatusCompleted},
		{Category: models.CategoryStudy, Status: models.StatusCompleted},
		{Category: models.CategoryWork, Status: models.StatusPending},
	}

	got := h.summary(tasks)

	assert.Equal(t, "You've completed 2 out of 3 recent tasks (67% completion rate). Most of your tasks are work-related. Your productivity is on track!", got.Summary)
	assert.Equal(t, []string{
		"Good completion rate of 67%",
		"Focus areas: work, study",
		"Consider breaking larger tasks into smaller, manageable steps",
	}, got.Insights)
}

func TestRateLabel(t *testing.T) {
	assert.Equal(t, "Excellent", rateLabel(70))
	assert.Equal(t, "Good", rateLabel(50))
	assert.Equal(t, "Keep pushing", rateLabel(49))
}

func TestHeuristicsSuggestions(t *testing.T) {
	got := heuristics{}.suggestions()

	require.Len(t, got, 3)
	assert.Equal(t, "Review and organize today's priorities", got[0].Title)
	assert.Equal(t, models.CategoryHealth, got[2].Category)
	assert.Equal(t, models.PriorityLow, got[2].Priority)
}
