// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const detailTimeLayout = "2006-01-02 15:04"

func renderTaskDetail(task models.Task) string {
	rows := [][2]string{
		{"Title", task.Title},
		{"Description", valueOrDash(task.Description)},
		{"Status", string(task.Status)},
		{"Priority", string(task.Priority)},
		{"Category", string(task.Category)},
		{"Due date", dateOrDash(task.DueDate)},
		{"Estimate", valueOrDash(task.EstimatedTime)},
		{"Advice", valueOrDash(task.AISuggestions)},
		{"Created", task.CreatedAt.Local().Format(detailTimeLayout)},
		{"Updated", task.UpdatedAt.Local().Format(detailTimeLayout)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(padRight(row[0], 12))
		b.WriteString("│ ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
