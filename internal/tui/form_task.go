// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var (
	errTitleRequired   = errors.New("title is required")
	errInvalidPriority = errors.New("priority must be low, medium or high")
	errInvalidCategory = errors.New("unknown category")
)

const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldCategory
	fieldDueDate
)

var taskFormLabels = []string{"Title", "Description", "Priority", "Category", "Due date"}

// taskFormModel is the create-task form. An analyze preview fills only the
// fields the user left empty.
type taskFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	analyzing  bool
	suggestion *models.Suggestion
	errMsg     string
}

func newTaskFormModel() taskFormModel {
	inputs := []textinput.Model{
		newInput("what needs doing", 200),
		newInput("details", 1000),
		newInput("low / medium / high", 6),
		newInput(categoryHint(), 13),
		newInput(models.DateLayout, 10),
	}
	inputs[fieldTitle].Focus()

	return taskFormModel{inputs: inputs}
}

func categoryHint() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, " / ")
}

func (m taskFormModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

func (m taskFormModel) analyzeRequest() (models.AnalyzeRequest, error) {
	if m.value(fieldTitle) == "" {
		return models.AnalyzeRequest{}, errTitleRequired
	}
	return models.AnalyzeRequest{Title: m.value(fieldTitle), Description: m.value(fieldDescription)}, nil
}

// applySuggestion keeps s as the preview and copies its values into the
// empty fields.
func (m *taskFormModel) applySuggestion(s models.Suggestion) {
	m.suggestion = &s

	if m.value(fieldPriority) == "" && s.Priority != "" {
		m.inputs[fieldPriority].SetValue(string(s.Priority))
	}
	if m.value(fieldCategory) == "" && s.Category != "" {
		m.inputs[fieldCategory].SetValue(string(s.Category))
	}
	if m.value(fieldDueDate) == "" && s.Deadline != nil {
		m.inputs[fieldDueDate].SetValue(s.Deadline.String())
	}
}

// toInput validates the form. Empty enum fields are left for the server to
// default or advise on.
func (m taskFormModel) toInput() (models.TaskInput, error) {
	input := models.TaskInput{
		Title:       m.value(fieldTitle),
		Description: m.value(fieldDescription),
		Priority:    models.Priority(strings.ToLower(m.value(fieldPriority))),
		Category:    models.Category(strings.ToLower(m.value(fieldCategory))),
	}

	if input.Title == "" {
		return models.TaskInput{}, errTitleRequired
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return models.TaskInput{}, errInvalidPriority
	}
	if input.Category != "" && !input.Category.Valid() {
		return models.TaskInput{}, fmt.Errorf("%w %q, use one of %s", errInvalidCategory, input.Category, categoryHint())
	}
	if raw := m.value(fieldDueDate); raw != "" {
		dueDate, err := models.ParseDate(raw)
		if err != nil {
			return models.TaskInput{}, err
		}
		input.DueDate = &dueDate
	}

	if m.suggestion != nil {
		input.AISuggestions = m.suggestion.Suggestions
		if m.suggestion.EstimatedTime != nil {
			input.EstimatedTime = *m.suggestion.EstimatedTime
		}
	}

	return input, nil
}

func (m taskFormModel) View() string {
	var b strings.Builder
	for i, label := range taskFormLabels {
		b.WriteString(padRight(label, 12))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case m.analyzing:
		b.WriteString("\n[Analyzing...]\n")
	}

	if s := m.suggestion; s != nil {
		b.WriteString("\nSuggestion\n")
		b.WriteString(fmt.Sprintf("  priority: %s  category: %s  deadline: %s  estimate: %s\n",
			s.Priority, s.Category, dateOrDash(s.Deadline), valueOrDash(stringOrEmpty(s.EstimatedTime))))
		if s.Suggestions != "" {
			b.WriteString("  ")
			b.WriteString(s.Suggestions)
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func dateOrDash(d *models.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
