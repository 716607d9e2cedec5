// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// services.
//
// A Validator accepts any supported request value and optionally a list of
// field names restricting which fields are checked.
package validators

import "context"

// Validator validates the provided input, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
