// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// OrDefault returns p, or PriorityMedium when p is not a known priority.
func (p Priority) OrDefault() Priority {
	if p.Valid() {
		return p
	}
	return PriorityMedium
}

// Category is the life area a task belongs to.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryOther}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

// OrDefault returns c, or CategoryPersonal when c is not a known category.
func (c Category) OrDefault() Category {
	if c.Valid() {
		return c
	}
	return CategoryPersonal
}

// Status is the progress state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// OrDefault returns s, or StatusPending when s is not a known status.
func (s Status) OrDefault() Status {
	if s.Valid() {
		return s
	}
	return StatusPending
}

// Task is a user-owned unit of work.
type Task struct {
	// ID is the store-assigned identifier of the task.
	ID int64 `json:"id"`

	// UserID is the owner of the task. It is always taken from the
	// authenticated caller, never from request bodies.
	UserID int64 `json:"userId"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
	DueDate     *Date    `json:"dueDate"`

	// AISuggestions is free-text advice produced by the advisor.
	AISuggestions string `json:"aiSuggestions,omitempty"`

	// EstimatedTime is a free-text estimate such as "2 hours".
	EstimatedTime string `json:"estimatedTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// IsCompleted reports whether the task is in the completed state.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TaskInput is the body of a task creation request.
// Empty enum fields fall back to their defaults.
type TaskInput struct {
	Title         string   `json:"title" validate:"required,notblank,max=200"`
	Description   string   `json:"description" validate:"max=1000"`
	Priority      Priority `json:"priority" validate:"omitempty,priority"`
	Category      Category `json:"category" validate:"omitempty,category"`
	Status        Status   `json:"status" validate:"omitempty,status"`
	DueDate       *Date    `json:"dueDate"`
	AISuggestions string   `json:"aiSuggestions" validate:"max=2000"`
	EstimatedTime string   `json:"estimatedTime" validate:"max=100"`
}

// TaskPatch is the body of a task update request.
// Nil fields are left untouched; DueDate is cleared when ClearDueDate is set.
// On the wire ClearDueDate is an explicit "dueDate": null.
type TaskPatch struct {
	Title         *string   `json:"title,omitempty" validate:"omitnil,notblank,max=200"`
	Description   *string   `json:"description,omitempty" validate:"omitnil,max=1000"`
	Priority      *Priority `json:"priority,omitempty" validate:"omitnil,priority"`
	Category      *Category `json:"category,omitempty" validate:"omitnil,category"`
	Status        *Status   `json:"status,omitempty" validate:"omitnil,status"`
	DueDate       *Date     `json:"dueDate,omitempty"`
	ClearDueDate  bool      `json:"-"`
	AISuggestions *string   `json:"aiSuggestions,omitempty" validate:"omitnil,max=2000"`
	EstimatedTime *string   `json:"estimatedTime,omitempty" validate:"omitnil,max=100"`
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Category == nil && p.Status == nil && p.DueDate == nil && !p.ClearDueDate &&
		p.AISuggestions == nil && p.EstimatedTime == nil
}

// TaskUpdate is a TaskPatch addressed to one task of one owner.
type TaskUpdate struct {
	ID     int64
	UserID int64
	TaskPatch
}

// TaskFilter narrows a task listing. UserID is mandatory.
type TaskFilter struct {
	UserID int64

	// CreatedSince, when non-nil, keeps tasks created at or after it.
	CreatedSince *time.Time

	// Limit caps the number of rows; zero means unlimited.
	Limit uint64

	// NewestFirst orders by creation time descending instead of ascending.
	NewestFirst bool
}
