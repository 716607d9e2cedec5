// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-task-keeper/models"

// statusFilter narrows the board to one status. The zero value shows all.
type statusFilter int

const (
	filterAll statusFilter = iota
	filterPending
	filterInProgress
	filterCompleted
)

var filterStatuses = map[statusFilter]models.Status{
	filterPending:    models.StatusPending,
	filterInProgress: models.StatusInProgress,
	filterCompleted:  models.StatusCompleted,
}

// next cycles all → pending → in-progress → completed → all.
func (f statusFilter) next() statusFilter {
	return (f + 1) % (filterCompleted + 1)
}

func (f statusFilter) String() string {
	if status, ok := filterStatuses[f]; ok {
		return string(status)
	}
	return "all"
}

func (f statusFilter) match(task models.Task) bool {
	status, ok := filterStatuses[f]
	return !ok || task.Status == status
}

func filterTasks(tasks []models.Task, f statusFilter) []models.Task {
	visible := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.match(task) {
			visible = append(visible, task)
		}
	}
	return visible
}

// taskStats is derived from the in-memory task list on every render.
type taskStats struct {
	Total          int
	Pending        int
	InProgress     int
	Completed      int
	CompletionRate int
}

func computeStats(tasks []models.Task) taskStats {
	stats := taskStats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		default:
			stats.Pending++
		}
	}
	stats.CompletionRate = models.CompletionRate(stats.Completed, stats.Total)
	return stats
}
