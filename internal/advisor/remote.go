// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

const chatCompletionsPath = "/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// remoteClient talks to an OpenAI-compatible chat-completions endpoint.
// It makes exactly one attempt per call.
type remoteClient struct {
	client *utils.HTTPClient
	apiKey string
	model  string
}

func newRemoteClient(cfg Config) *remoteClient {
	return &remoteClient{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// completeJSON sends system and user prompts and decodes the JSON object
// the model put into its first choice into out.
func (r *remoteClient) completeJSON(ctx context.Context, system, prompt string, maxTokens int, out any) error {
	if r.apiKey == "" {
		return ErrAPIKeyMissing
	}
	log := logger.FromContext(ctx)

	request := completionRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:      maxTokens,
		Temperature:    temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	var completion completionResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.apiKey).
		SetBody(request).
		SetResult(&completion).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "*remoteClient.completeJSON").Msg("advisor request failed")
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*remoteClient.completeJSON").Int("status", resp.StatusCode()).Msg("advisor responded with error status")
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}

	if len(completion.Choices) == 0 {
		return ErrEmptyChoices
	}

	if err = json.Unmarshal([]byte(completion.Choices[0].Message.Content), out); err != nil {
		log.Err(err).Str("func", "*remoteClient.completeJSON").Msg("advisor content is not JSON")
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	return nil
}
