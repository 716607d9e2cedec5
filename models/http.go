// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AnalyzeRequest is the body of POST /api/tasks/analyze.
type AnalyzeRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

// ChatRequest is the body of POST /api/ai/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank,max=500"`
}

// AnalyticsRange selects the trailing window of an analytics query.
type AnalyticsRange string

const (
	RangeWeek  AnalyticsRange = "week"
	RangeMonth AnalyticsRange = "month"
	RangeYear  AnalyticsRange = "year"
)

// Days returns the window length in days. Unknown ranges count as a week.
func (r AnalyticsRange) Days() int {
	switch r {
	case RangeMonth:
		return 30
	case RangeYear:
		return 365
	default:
		return 7
	}
}
