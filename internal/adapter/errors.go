// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package adapter

import "errors"

// Transport-agnostic sentinel errors mapped from server responses. Callers
// match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
