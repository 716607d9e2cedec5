// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	analyzeSystemPrompt = "You are an AI task management assistant that helps users organize and prioritize their tasks efficiently. Always respond with valid JSON."

	summarySystemPrompt = "You are a productivity coach AI that provides encouraging insights about task management patterns. Always respond with valid JSON."

	suggestionsSystemPrompt = "You are a helpful AI assistant that suggests relevant tasks based on user patterns. Always respond with valid JSON."

	chatSystemPrompt = "You are a helpful AI task management assistant. You can answer questions about the user's tasks and provide productivity advice. Always respond with valid JSON."
)

const analyzePromptTemplate = `Analyze this task and provide structured information in JSON format:

Task: %q
Description: %q

Please analyze and return a JSON object with the following structure:
{
  "priority": "low|medium|high",
  "category": "work|personal|study|health|other",
  "deadline": "YYYY-MM-DD format if detectable, otherwise null",
  "estimatedTime": "estimated time like '2 hours', '30 minutes', etc.",
  "suggestions": "brief helpful tip or insight about this task"
}

Analysis guidelines:
- Priority: high for urgent/important items, medium for regular tasks, low for casual items
- Category: classify based on context (work, personal, study, health, other)
- Deadline: extract any date/time mentions (today, tomorrow, Friday, etc.). Today is %s.
- EstimatedTime: realistic estimate based on task complexity
- Suggestions: actionable advice for completing the task efficiently

Focus on being practical and helpful.`

const summaryPromptTemplate = `Analyze these recent tasks and provide insights in JSON format:

%s

Generate a JSON response with:
{
  "summary": "A friendly 2-3 sentence summary of the user's recent productivity and task patterns",
  "insights": ["insight 1", "insight 2", "insight 3"]
}

The summary should be encouraging and highlight patterns. Insights should be specific, actionable tips based on the task data. Focus on:
- Productivity patterns
- Category distribution
- Completion rates
- Time management suggestions
- Priority patterns

Keep the tone supportive and motivational.`

const suggestionsPromptTemplate = `Based on this user's task patterns, suggest 5 useful tasks they might want to add:

User Context:
- Recent categories: %s
- Common priorities: %s
- Activity level: %s

Provide suggestions in JSON format:
{
  "suggestions": [
    {
      "title": "suggested task title",
      "category": "category",
      "priority": "priority",
      "reason": "why this task would be helpful"
    }
  ]
}

Make suggestions practical and relevant to their patterns.`

const chatPromptTemplate = `The user is asking about their tasks. Here's their recent task data:

%s

User question: %q

Provide a helpful, friendly response about their tasks. Be specific and reference actual task data when relevant. If they're asking for advice, provide actionable suggestions.

Respond in JSON format:
{
  "response": "your helpful response to the user"
}

Keep responses conversational and supportive.`

// describeTasks renders one numbered line per task.
func describeTasks(tasks []models.Task) string {
	var b strings.Builder
	for i, task := range tasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %q - Category: %s, Priority: %s, Status: %s",
			i+1, task.Title, task.Category, task.Priority, task.Status)
		if task.DueDate != nil {
			fmt.Fprintf(&b, ", Due: %s", task.DueDate)
		}
	}
	return b.String()
}

func joinOr[T ~string](values []T, empty string) string {
	if len(values) == 0 {
		return empty
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func analyzePrompt(title, description string, today models.Date) string {
	return fmt.Sprintf(analyzePromptTemplate, title, description, today)
}

func summaryPrompt(tasks []models.Task) string {
	return fmt.Sprintf(summaryPromptTemplate, describeTasks(tasks))
}

func suggestionsPrompt(suggestionCtx models.SuggestionContext) string {
	level := string(suggestionCtx.ActivityLevel)
	if level == "" {
		level = string(models.ActivityModerate)
	}
	return fmt.Sprintf(suggestionsPromptTemplate,
		joinOr(suggestionCtx.Categories, "general"),
		joinOr(suggestionCtx.Priorities, "medium"),
		level)
}

func chatPrompt(message string, tasks []models.Task) string {
	return fmt.Sprintf(chatPromptTemplate, describeTasks(tasks), message)
}
