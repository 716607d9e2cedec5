// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var fixedNow = time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 3, Title: "Write report", Status: models.StatusPending, Priority: models.PriorityHigh, Category: models.CategoryWork},
		{ID: 2, Title: "Gym", Status: models.StatusInProgress, Priority: models.PriorityMedium, Category: models.CategoryHealth},
		{ID: 1, Title: "Read chapter 4", Status: models.StatusCompleted, Priority: models.PriorityLow, Category: models.CategoryStudy},
	}
}
