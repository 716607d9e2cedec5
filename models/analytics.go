// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CategoryCount is the number of tasks in one category.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// PriorityCount is the number of tasks with one priority.
type PriorityCount struct {
	Priority Priority `json:"priority"`
	Count    int      `json:"count"`
}

// Analytics aggregates a user's tasks created within a trailing window.
type Analytics struct {
	TotalTasks         int             `json:"totalTasks"`
	CompletedTasks     int             `json:"completedTasks"`
	CompletionRate     int             `json:"completionRate"`
	AverageTasksPerDay float64         `json:"averageTasksPerDay"`
	ProductivityScore  int             `json:"productivityScore"`
	TasksByCategory    []CategoryCount `json:"tasksByCategory"`
	TasksByPriority    []PriorityCount `json:"tasksByPriority"`
	RecentTasks        []Task          `json:"recentTasks"`
}

// MotivationStats is the tally attached to a motivational message.
type MotivationStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completionRate"`
}

// MotivationalMessage is returned by POST /api/ai/motivational-message.
type MotivationalMessage struct {
	Message string          `json:"message"`
	Emoji   string          `json:"emoji"`
	Stats   MotivationStats `json:"stats"`
}

// CompletionRate returns completed/total as a percentage rounded half up.
// It is zero when total is zero.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (completed*100 + total/2) / total
}
