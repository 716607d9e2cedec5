// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates API request models using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator with the task enum tags
// ("priority", "category", "status") and "notblank" registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "priority", func(fl validator.FieldLevel) bool {
		return models.Priority(fl.Field().String()).Valid()
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	mustRegister(v, "status", func(fl validator.FieldLevel) bool {
		return models.Status(fl.Field().String()).Valid()
	})

	return &RequestValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// Validate checks obj. When fields are given only those struct fields
// (Go names) are validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.TaskInput, *models.TaskInput,
		models.TaskPatch, *models.TaskPatch,
		models.AnalyzeRequest, *models.AnalyzeRequest,
		models.ChatRequest, *models.ChatRequest:
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if !hasFields(obj, fields) {
			return ErrUnknownField
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return translate(err)
}

func hasFields(obj any, fields []string) bool {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return false
		}
	}
	return true
}

// translate turns the first field error into a ValidationError.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: messageFor(fe)}
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "priority":
		return field + " must be one of " + joinValues(models.Priorities)
	case "category":
		return field + " must be one of " + joinValues(models.Categories)
	case "status":
		return field + " must be one of " + joinValues(models.Statuses)
	default:
		return field + " is invalid"
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
