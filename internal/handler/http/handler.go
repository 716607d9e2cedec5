// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

// maxRequestBodySize caps every request body.
const maxRequestBodySize = 10 << 20

type Handler struct {
	services *service.Services

	// production hides internal error text from 500 replies.
	production     bool
	allowedOrigins []string
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		production:     cfg.App.IsProduction(),
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
