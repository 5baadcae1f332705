// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import (
	"errors"
	"net/http"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/service"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
)

// errorResponse is the JSON error body. Code carries a stable
// machine-readable identifier for errors clients branch on; Error carries
// the human-readable message.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// errorStatusMap is matched in order and the first hit wins. An error can
// wrap more than one mapped sentinel (a partially applied reassignment
// wraps the store failure that interrupted it), so the incomplete-state
// sentinels sit above the store and validation ones they may carry.
var errorStatusMap = []errorMapping{
	{service.ErrReassignIncomplete, http.StatusInternalServerError, "reassign_incomplete"},
	{service.ErrOrphanIncomplete, http.StatusInternalServerError, "orphan_incomplete"},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid_data"},
	{service.ErrWrongCredentials, http.StatusUnauthorized, "wrong_credentials"},
	{service.ErrGeolocationRequired, http.StatusForbidden, "geolocation_required"},
	{service.ErrUserInactive, http.StatusForbidden, "user_inactive"},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "token_invalid"},

	{service.ErrNotFound, http.StatusNotFound, "not_found"},
	{service.ErrEmailTaken, http.StatusConflict, "email_taken"},
	{service.ErrRoleInUse, http.StatusConflict, "role_in_use"},

	{service.ErrHasDependents, http.StatusConflict, "has_dependents"},
	{service.ErrReassignTargetInvalid, http.StatusBadRequest, "reassign_target_invalid"},
	{service.ErrOrphanNotConfirmed, http.StatusBadRequest, "orphan_not_confirmed"},
	{service.ErrFormNotPublished, http.StatusNotFound, "not_found"},

	{policy.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
	{policy.ErrSelfProtection, http.StatusForbidden, "self_protection"},

	{store.ErrVersionConflict, http.StatusConflict, "version_conflict"},
}

// respondError maps err onto its HTTP status and machine-readable code and
// writes the JSON error body. Unmapped errors become plain 500s without
// leaking internals.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for _, mapping := range errorStatusMap {
		if errors.Is(err, mapping.target) {
			log.Err(err).Int("status", mapping.status).Str("code", mapping.code).Msg("request failed")
			_, _ = utils.WriteJSON(w, errorResponse{Error: mapping.target.Error(), Code: mapping.code}, mapping.status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	_, _ = utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
}
