// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package validators holds the input validation rules for domain records
// and form submissions.
//
// RecordValidator covers the admin-side records (users, clients, farmers,
// tasks, complaints, forms, credentials) behind the generic Validator
// interface. Submission validation is a standalone function because it
// checks responses against a form definition rather than a struct.
package validators

import "context"

// Validator validates a domain value. The optional field names restrict
// validation to a subset of fields, which update paths use to skip checks
// on fields the caller did not touch.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
