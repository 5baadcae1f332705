// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

// createUserRequest carries the new account plus its initial password.
// Password travels outside the User model so it never round-trips in
// regular user payloads.
type createUserRequest struct {
	models.User
	Password string `json:"password"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.services.UserService.List(r.Context(), principal, perms, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.Get(r.Context(), principal, perms, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Create(r.Context(), principal, perms, req.User, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	user.ID = chi.URLParam(r, "id")

	updated, err := h.services.UserService.Update(r.Context(), principal, perms, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteUser serves both deletion paths. A bare DELETE removes a user with
// no dependents; a DELETE carrying a body with orphan=true and the repeated
// user id in confirm takes the destructive orphaning path.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")

	var req models.DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Orphan {
		if err := h.services.UserService.DeleteOrphaning(r.Context(), principal, perms, id, req); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), principal, perms, id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userDependents(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	report, err := h.services.UserService.DependencyScan(r.Context(), principal, perms, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) reassignUser(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.ReassignAndDelete(r.Context(), principal, perms, chi.URLParam(r, "id"), req); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
