// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, false)

	for _, path := range []string{"/health", "/api/health"} {
		rr := doRequest(t, router, http.MethodGet, path, "", false)

		assert.Equal(t, http.StatusOK, rr.Code)
		health := decodeBody[models.HealthResponse](t, rr)
		assert.Equal(t, "OK", health.Status)
		assert.Equal(t, fixedNow, health.Timestamp)
	}
}

func TestVersion(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rr := doRequest(t, router, http.MethodGet, "/api/version", "", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", decodeBody[models.VersionResponse](t, rr).Version)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rr := doRequest(t, router, http.MethodGet, "/api/nothing", "", false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Route not found", errorMessage(t, rr))
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rr := doRequest(t, router, http.MethodDelete, "/api/auth/login", "", false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Route not found", errorMessage(t, rr))
}

func TestTraceIDHeaderOnEveryResponse(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rr := doRequest(t, router, http.MethodGet, "/health", "", false)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSUnknownOrigin(t *testing.T) {
	router, _ := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
