// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via the auth service, and resolves the token's
// subject into a principal and permission set. Both are stored in the
// request context so downstream handlers never re-derive them.
//
// Resolution happens on every request, not once at login: deactivating a
// user or their role locks them out immediately even while their token is
// still formally valid.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent or malformed, or the token fails validation, and with
// HTTP 403 when the resolved account may no longer act.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Err(err).Msg("token has no usable subject")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		principal, perms, err := h.services.AuthService.ResolvePrincipal(ctx, userID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)
		ctx = context.WithValue(ctx, utils.PermissionsCtxKey, perms)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
