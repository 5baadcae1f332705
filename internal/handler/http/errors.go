// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import "errors"

// Bearer token parsing errors, surfaced by the auth middleware as 401s.
var (
	// ErrEmptyAuthorizationHeader: the request carried no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header could not be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix was present but the token value was
	// an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
