// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	User User `json:"user"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// ChatResponse is returned by POST /api/ai/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// SuggestionsResponse is returned by GET /api/ai/suggestions.
type SuggestionsResponse struct {
	Suggestions []SuggestedTask `json:"suggestions"`
}
