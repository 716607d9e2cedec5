// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// ResponseError is a non-2xx reply. It matches the sentinel of its status
// with errors.Is.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return e.Unwrap().Error() + ": " + e.Message
}

func (e *ResponseError) Unwrap() error {
	if sentinel, ok := statusErrors[e.StatusCode]; ok {
		return sentinel
	}
	return fmt.Errorf("%w %d", ErrUnexpectedStatus, e.StatusCode)
}

// mapHTTPError returns nil for 2xx replies and a *ResponseError otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := serverMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &ResponseError{StatusCode: resp.StatusCode(), Message: message}
}

// serverMessage extracts "message" from a JSON error body, falling back to
// the raw text.
func serverMessage(body []byte) string {
	var errorResponse models.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Message != "" {
		return errorResponse.Message
	}
	return strings.TrimSpace(string(body))
}

// Message returns the text to show a user for err: the server message for
// API errors, the error text otherwise.
func Message(err error) string {
	var responseErr *ResponseError
	if errors.As(err, &responseErr) {
		return responseErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
