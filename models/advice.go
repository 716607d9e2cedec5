// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Suggestion is the structured advice produced for a single task.
// Deadline and EstimatedTime are null when nothing usable was found.
type Suggestion struct {
	Priority      Priority `json:"priority"`
	Category      Category `json:"category"`
	Deadline      *Date    `json:"deadline"`
	EstimatedTime *string  `json:"estimatedTime"`
	Suggestions   string   `json:"suggestions"`
}

// TaskSummary is a short narrative over a list of tasks.
type TaskSummary struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
}

// SuggestedTask is a new task proposed by the advisor.
type SuggestedTask struct {
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// ActivityLevel buckets how many tasks a user created recently.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// SuggestionContext describes a user's recent work for task suggestions.
type SuggestionContext struct {
	Categories    []Category    `json:"categories"`
	Priorities    []Priority    `json:"priorities"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}
