// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package validators

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agrodesk/agrodesk/models"
)

// ValidateSubmission checks a public form submission against the form's
// field schema.
//
// Rules:
//   - Every required field must have a non-empty response.
//   - Responses keyed by an id absent from the schema are rejected.
//   - number fields must parse as a float.
//   - email fields must parse as a single address.
//   - date fields must be in YYYY-MM-DD form.
//   - select fields must match one of the declared options exactly.
//   - text, textarea, and checkbox responses are accepted as-is.
//
// Optional fields with an empty or absent response skip the type check.
func ValidateSubmission(form models.DigitalForm, responses map[string]string) error {
	for _, field := range form.Fields {
		value, ok := responses[field.ID]
		if field.Required && strings.TrimSpace(value) == "" {
			return fmt.Errorf("field %q: %w", field.ID, ErrRequiredResponse)
		}
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}

		if err := validateResponse(field, value); err != nil {
			return fmt.Errorf("field %q: %w", field.ID, err)
		}
	}

	for fieldID := range responses {
		if _, ok := form.Field(fieldID); !ok {
			return fmt.Errorf("field %q: %w", fieldID, ErrUnknownFieldID)
		}
	}

	return nil
}

func validateResponse(field models.FormField, value string) error {
	switch field.Type {
	case models.FieldNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return ErrNotANumber
		}
	case models.FieldEmail:
		if !isValidEmail(value) {
			return ErrInvalidEmail
		}
	case models.FieldDate:
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return ErrNotADate
		}
	case models.FieldSelect:
		for _, option := range field.Options {
			if value == option {
				return nil
			}
		}
		return ErrNotAnOption
	}

	return nil
}
