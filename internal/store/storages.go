// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-task-keeper/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages builds every repository over one shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}
}
