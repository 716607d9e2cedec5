// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package advisor

import "errors"

var (
	// ErrAPIKeyMissing disables the remote path; no request is sent.
	ErrAPIKeyMissing = errors.New("advisor API key is not configured")

	ErrRequestFailed    = errors.New("advisor request failed")
	ErrUnexpectedStatus = errors.New("advisor responded with unexpected status")
	ErrEmptyChoices     = errors.New("advisor response has no choices")
	ErrInvalidContent   = errors.New("advisor response content is not valid JSON")
	ErrNoSuggestions    = errors.New("advisor response has no usable suggestions")
)
