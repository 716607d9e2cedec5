// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError carries a message fit for API clients.
// It matches ErrValidationFailed with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Message returns the client-facing text of the first ValidationError in
// err's chain, or "" when there is none.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return ""
}
