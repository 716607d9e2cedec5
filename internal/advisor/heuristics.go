// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	highPriorityKeywords = []string{"urgent", "asap", "important", "critical", "deadline"}
	lowPriorityKeywords  = []string{"low priority", "someday", "maybe", "when free"}

	// categoryKeywords is checked in order; the first hit wins.
	categoryKeywords = []struct {
		category models.Category
		keywords []string
	}{
		{models.CategoryWork, []string{"work", "meeting", "project", "client", "email"}},
		{models.CategoryStudy, []string{"study", "learn", "course", "homework", "assignment"}},
		{models.CategoryHealth, []string{"exercise", "health", "doctor", "gym", "workout"}},
	}

	estimateRules = []struct {
		keywords []string
		estimate string
	}{
		{[]string{"quick", "brief"}, "15 minutes"},
		{[]string{"meeting", "call"}, "1 hour"},
		{[]string{"project", "assignment"}, "2-3 hours"},
		{[]string{"research", "study"}, "1-2 hours"},
	}

	categoryTips = map[models.Category]string{
		models.CategoryWork:     "Consider scheduling this during your most productive hours for best results.",
		models.CategoryPersonal: "Break this into smaller steps if it feels overwhelming.",
		models.CategoryStudy:    "Set a timer and take breaks every 25 minutes (Pomodoro technique).",
		models.CategoryHealth:   "Consistency is key - even small daily actions make a big difference.",
		models.CategoryOther:    "Add specific details and deadlines to make this task more actionable.",
	}
)

const (
	defaultEstimate   = "30 minutes"
	defaultTip        = "Focus on one step at a time to make steady progress."
	defaultSuggestion = "Break this task into smaller steps for easier completion."

	emptySummary   = "No tasks to analyze yet. Start creating tasks to get AI insights!"
	defaultSummary = "You're making great progress on your tasks! Keep up the excellent work."

	defaultChatResponse  = "I'm here to help with your tasks! Feel free to ask me anything about your productivity."
	fallbackChatResponse = "I'm having trouble accessing AI features right now, but I'm still here to help organize your tasks!"
)

var defaultInsights = []string{
	"Try grouping similar tasks together for better efficiency",
	"Consider setting specific time blocks for different task categories",
	"Regular breaks between tasks can boost your productivity",
}

// FallbackChatResponse is the answer given when chat cannot reach the model
// or the caller's tasks.
func FallbackChatResponse() string {
	return fallbackChatResponse
}

// heuristics answers every advisor operation without a network call.
type heuristics struct {
	now func() time.Time
}

// words lower-cases text and splits it on anything but letters and digits.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasKeyword reports whether the words of keyword appear consecutively in
// tokens. The last word also matches with a trailing "s".
func hasKeyword(tokens []string, keyword string) bool {
	parts := strings.Fields(keyword)
	if len(parts) == 0 {
		return false
	}
	for i := 0; i+len(parts) <= len(tokens); i++ {
		matched := true
		for j, part := range parts {
			token := tokens[i+j]
			if token == part {
				continue
			}
			if j == len(parts)-1 && token == part+"s" {
				continue
			}
			matched = false
			break
		}
		if matched {
			return true
		}
	}
	return false
}

func hasAny(tokens []string, keywords []string) bool {
	for _, keyword := range keywords {
		if hasKeyword(tokens, keyword) {
			return true
		}
	}
	return false
}

func (h heuristics) analyze(title, description string) models.Suggestion {
	tokens := words(title + " " + description)

	priority := models.PriorityMedium
	switch {
	case hasAny(tokens, highPriorityKeywords):
		priority = models.PriorityHigh
	case hasAny(tokens, lowPriorityKeywords):
		priority = models.PriorityLow
	}

	category := models.CategoryPersonal
	for _, rule := range categoryKeywords {
		if hasAny(tokens, rule.keywords) {
			category = rule.category
			break
		}
	}

	estimate := defaultEstimate
	for _, rule := range estimateRules {
		if hasAny(tokens, rule.keywords) {
			estimate = rule.estimate
			break
		}
	}

	return models.Suggestion{
		Priority:      priority,
		Category:      category,
		Deadline:      h.deadline(tokens),
		EstimatedTime: &estimate,
		Suggestions:   tipFor(category),
	}
}

func (h heuristics) deadline(tokens []string) *models.Date {
	today := models.NewDate(h.now())

	var due models.Date
	switch {
	case hasKeyword(tokens, "today"):
		due = today
	case hasKeyword(tokens, "tomorrow"):
		due = today.AddDays(1)
	case hasKeyword(tokens, "friday"):
		due = nextWeekday(today, time.Friday)
	default:
		return nil
	}
	return &due
}

// nextWeekday returns the first day on or after from that falls on weekday.
func nextWeekday(from models.Date, weekday time.Weekday) models.Date {
	days := (int(weekday) - int(from.Weekday()) + 7) % 7
	return from.AddDays(days)
}

func tipFor(category models.Category) string {
	if tip, ok := categoryTips[category]; ok {
		return tip
	}
	return defaultTip
}

func (h heuristics) summary(tasks []models.Task) models.TaskSummary {
	total := len(tasks)
	completed := 0
	counts := make(map[models.Category]int)
	order := make([]models.Category, 0, len(models.Categories))
	for _, task := range tasks {
		if task.IsCompleted() {
			completed++
		}
		if _, seen := counts[task.Category]; !seen {
			order = append(order, task.Category)
		}
		counts[task.Category]++
	}

	rate := models.CompletionRate(completed, total)

	var mostCommon models.Category
	best := 0
	for _, category := range order {
		if counts[category] >= best {
			mostCommon, best = category, counts[category]
		}
	}

	focus := mostCommonSentence(mostCommon)
	summary := fmt.Sprintf("You've completed %d out of %d recent tasks (%d%% completion rate). %s Your productivity is on track!",
		completed, total, rate, focus)

	areas := order
	if len(areas) > 3 {
		areas = areas[:3]
	}
	names := make([]string, len(areas))
	for i, category := range areas {
		names[i] = string(category)
	}

	return models.TaskSummary{
		Summary: summary,
		Insights: []string{
			fmt.Sprintf("%s completion rate of %d%%", rateLabel(rate), rate),
			"Focus areas: " + strings.Join(names, ", "),
			"Consider breaking larger tasks into smaller, manageable steps",
		},
	}
}

func mostCommonSentence(category models.Category) string {
	if category == "" {
		return "Keep up the great work!"
	}
	return fmt.Sprintf("Most of your tasks are %s-related.", category)
}

func rateLabel(rate int) string {
	switch {
	case rate >= 70:
		return "Excellent"
	case rate >= 50:
		return "Good"
	}
	return "Keep pushing"
}

func (h heuristics) suggestions() []models.SuggestedTask {
	return []models.SuggestedTask{
		{
			Title:    "Review and organize today's priorities",
			Category: models.CategoryPersonal,
			Priority: models.PriorityMedium,
			Reason:   "Daily planning helps maintain focus",
		},
		{
			Title:    "Check and respond to important emails",
			Category: models.CategoryWork,
			Priority: models.PriorityMedium,
			Reason:   "Stay on top of communication",
		},
		{
			Title:    "Take a 15-minute walk or stretch break",
			Category: models.CategoryHealth,
			Priority: models.PriorityLow,
			Reason:   "Regular breaks boost productivity",
		},
	}
}
