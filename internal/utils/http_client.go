// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty request builder
// directly.
//
//	client := utils.NewHTTPClient("https://api.mistral.ai/v1", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).SetBody(body).Post("/chat/completions")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with JSON content negotiation.
// An empty baseURL leaves request URLs absolute; a zero timeout disables
// the client-wide deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
