// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.RequestSize(maxRequestBodySize))
	router.Use(withGzipRequest)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Route("/api/tasks", func(r chi.Router) {
			r.Get("/", h.listTasks)
			r.Post("/", h.createTask)
			r.Get("/analytics", h.analytics)
			r.Post("/analyze", h.analyzeTask)
			r.Get("/ai-summary", h.summary)
			r.Get("/{id}", h.getTask)
			r.Put("/{id}", h.updateTask)
			r.Delete("/{id}", h.deleteTask)
		})

		r.Route("/api/ai", func(r chi.Router) {
			r.Post("/chat", h.chat)
			r.Post("/motivational-message", h.motivationalMessage)
			r.Get("/suggestions", h.suggestions)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
