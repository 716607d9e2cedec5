// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	usersTable = "users"
	tasksTable = "tasks"
)

var (
	userColumns = []string{
		"id", "name", "email", "password_hash", "role", "theme", "notifications",
		"tasks_created", "tasks_completed", "created_at",
	}
	taskColumns = []string{
		"id", "user_id", "title", "description", "priority", "category", "status",
		"due_date", "ai_suggestions", "estimated_time", "created_at", "updated_at",
	}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ────────────────────────────────────────────────────────────────────

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("name", "email", "password_hash", "role", "theme", "notifications",
			"tasks_created", "tasks_completed", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.Role, user.Preferences.Theme,
			user.Preferences.Notifications, user.Stats.TasksCreated, user.Stats.TasksCompleted, user.CreatedAt).
		Suffix(returning("id")).
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

// buildAdjustStatsQuery shifts the owner's counters by the given deltas,
// never letting them drop below zero.
func (db *DB) buildAdjustStatsQuery(userID int64, createdDelta, completedDelta int64) (string, []any, error) {
	update := db.builder.Update(usersTable)
	if createdDelta != 0 {
		update = update.Set("tasks_created", clampedCounter("tasks_created", createdDelta))
	}
	if completedDelta != 0 {
		update = update.Set("tasks_completed", clampedCounter("tasks_completed", completedDelta))
	}
	return update.Where(sq.Eq{"id": userID}).ToSql()
}

func clampedCounter(column string, delta int64) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("CASE WHEN %[1]s + ? < 0 THEN 0 ELSE %[1]s + ? END", column), delta, delta)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.Preferences.Theme, &user.Preferences.Notifications,
		&user.Stats.TasksCreated, &user.Stats.TasksCompleted, &user.CreatedAt,
	)
	return user, err
}

// ── tasks ────────────────────────────────────────────────────────────────────

func (db *DB) buildInsertTaskQuery(task models.Task) (string, []any, error) {
	return db.builder.
		Insert(tasksTable).
		Columns("user_id", "title", "description", "priority", "category", "status",
			"due_date", "ai_suggestions", "estimated_time", "created_at", "updated_at").
		Values(task.UserID, task.Title, task.Description, task.Priority, task.Category, task.Status,
			task.DueDate, task.AISuggestions, task.EstimatedTime, task.CreatedAt, task.UpdatedAt).
		Suffix(returning("id")).
		ToSql()
}

func (db *DB) buildListTasksQuery(filter models.TaskFilter) (string, []any, error) {
	query := db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.CreatedSince != nil {
		query = query.Where(sq.GtOrEq{"created_at": filter.CreatedSince.UTC()})
	}

	if filter.NewestFirst {
		query = query.OrderBy("created_at DESC", "id DESC")
	} else {
		query = query.OrderBy("created_at ASC", "id ASC")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func (db *DB) buildGetTaskQuery(userID, taskID int64) (string, []any, error) {
	return db.builder.
		Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
}

func (db *DB) buildTaskStatusQuery(userID, taskID int64) (string, []any, error) {
	query := db.builder.
		Select("status").
		From(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID})
	return db.lockForUpdate(query).ToSql()
}

// buildUpdateTaskQuery sets only the non-nil patch fields plus updated_at.
func (db *DB) buildUpdateTaskQuery(update models.TaskUpdate, updatedAt time.Time) (string, []any, error) {
	query := db.builder.Update(tasksTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Priority != nil {
		query = query.Set("priority", *update.Priority)
	}
	if update.Category != nil {
		query = query.Set("category", *update.Category)
	}
	if update.Status != nil {
		query = query.Set("status", *update.Status)
	}
	switch {
	case update.ClearDueDate:
		query = query.Set("due_date", nil)
	case update.DueDate != nil:
		query = query.Set("due_date", *update.DueDate)
	}
	if update.AISuggestions != nil {
		query = query.Set("ai_suggestions", *update.AISuggestions)
	}
	if update.EstimatedTime != nil {
		query = query.Set("estimated_time", *update.EstimatedTime)
	}

	return query.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returning(taskColumns...)).
		ToSql()
}

func (db *DB) buildDeleteTaskQuery(userID, taskID int64) (string, []any, error) {
	return db.builder.
		Delete(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		Suffix(returning("status")).
		ToSql()
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task    models.Task
		dueDate *models.Date
	)
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Priority, &task.Category, &task.Status, &dueDate,
		&task.AISuggestions, &task.EstimatedTime, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}
	task.DueDate = dueDate
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()
	return task, nil
}
