// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository].
//
// Mutations run in a transaction together with the owner's stats update so
// tasks_created and tasks_completed always match the tasks table.
type taskRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
		now:    utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// CreateTask inserts task and bumps the owner's counters. CreatedAt and
// UpdatedAt are assigned here.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	now := t.now()
	task.CreatedAt, task.UpdatedAt = now, now

	insertQuery, insertArgs, err := t.db.buildInsertTaskQuery(task)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error building insert query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var completed int64
	if task.IsCompleted() {
		completed = 1
	}
	statsQuery, statsArgs, err := t.db.buildAdjustStatsQuery(task.UserID, 1, completed)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error building stats query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to begin transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&task.ID); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error inserting task")
		if t.db.classify(err) == ForeignKeyViolation {
			return models.Task{}, ErrNoUserWasFound
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = t.execStats(ctx, tx, statsQuery, statsArgs); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error updating user stats")
		return models.Task{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*taskRepository.CreateTask").Msg("failed to commit transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return task, nil
}

// ListTasks returns the owner's tasks matching filter.
func (t *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.db.buildListTasksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*taskRepository.ListTasks").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// GetTask returns one task of the owner.
func (t *taskRepository) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := t.db.buildGetTaskQuery(userID, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error building select query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(t.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error scanning task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// UpdateTask applies the non-nil fields of update and keeps tasks_completed
// in step with transitions into and out of the completed status.
func (t *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	statusQuery, statusArgs, err := t.db.buildTaskStatusQuery(update.UserID, update.ID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building status query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updateQuery, updateArgs, err := t.db.buildUpdateTaskQuery(update, t.now())
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("failed to begin transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// read (and lock) the previous status
	var previous models.Status
	err = tx.QueryRowContext(ctx, statusQuery, statusArgs...).Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error reading task status")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	task, err := scanTask(tx.QueryRowContext(ctx, updateQuery, updateArgs...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error updating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if delta := completedDelta(previous, task.Status); delta != 0 {
		statsQuery, statsArgs, buildErr := t.db.buildAdjustStatsQuery(update.UserID, 0, delta)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "*taskRepository.UpdateTask").Msg("error building stats query")
			return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if err = t.execStats(ctx, tx, statsQuery, statsArgs); err != nil {
			log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error updating user stats")
			return models.Task{}, err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*taskRepository.UpdateTask").Msg("failed to commit transaction")
		return models.Task{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return task, nil
}

// DeleteTask removes one task of the owner and decrements the counters it
// contributed to.
func (t *taskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := t.db.buildDeleteTaskQuery(userID, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var status models.Status
	err = tx.QueryRowContext(ctx, deleteQuery, deleteArgs...).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var completed int64
	if status == models.StatusCompleted {
		completed = -1
	}
	statsQuery, statsArgs, err := t.db.buildAdjustStatsQuery(userID, -1, completed)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error building stats query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = t.execStats(ctx, tx, statsQuery, statsArgs); err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error updating user stats")
		return err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*taskRepository.DeleteTask").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (t *taskRepository) execStats(ctx context.Context, tx *sql.Tx, query string, args []any) error {
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// completedDelta is +1 when a task enters the completed status, -1 when it
// leaves it and 0 otherwise.
func completedDelta(before, after models.Status) int64 {
	wasCompleted := before == models.StatusCompleted
	isCompleted := after == models.StatusCompleted
	switch {
	case !wasCompleted && isCompleted:
		return 1
	case wasCompleted && !isCompleted:
		return -1
	}
	return 0
}
