// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/advisor"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type Services struct {
	AuthService      AuthService
	TaskService      TaskService
	AssistantService AssistantService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, adv advisor.Advisor, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	taskService := NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, adv, logger))

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		TaskService:      taskService,
		AssistantService: NewAssistantService(storages.TaskRepository, adv, logger),
		AppInfoService:   appInfoService,
	}, nil
}
