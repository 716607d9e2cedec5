// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
)

// Token budgets of the individual operations.
const (
	analyzeMaxTokens     = 400
	summaryMaxTokens     = 600
	suggestionsMaxTokens = 500
	chatMaxTokens        = 400

	temperature = 0.3

	// chatContextTasks is how many tasks are described to the model in chat.
	chatContextTasks = 10
	// maxInsights caps the insights taken from a remote summary.
	maxInsights = 5
)

// Config configures the remote model.
type Config struct {
	// APIKey enables the remote path. Empty means heuristics only.
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// MaxTokens caps every per-operation budget when positive.
	MaxTokens int
}

// NewConfig converts the advisor section of the service configuration.
func NewConfig(cfg config.Advisor) Config {
	return Config{
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		Timeout:   cfg.Timeout(),
		MaxTokens: cfg.MaxTokens,
	}
}

// budget applies the global cap to an operation budget.
func (c Config) budget(operation int) int {
	if c.MaxTokens > 0 && c.MaxTokens < operation {
		return c.MaxTokens
	}
	return operation
}
