// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	roles, err := h.services.RoleService.List(r.Context(), principal, perms)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, roles, http.StatusOK)
}

func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	role, err := h.services.RoleService.Get(r.Context(), principal, perms, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, role, http.StatusOK)
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var role models.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RoleService.Create(r.Context(), principal, perms, role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var role models.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	role.ID = chi.URLParam(r, "id")

	updated, err := h.services.RoleService.Update(r.Context(), principal, perms, role)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.RoleService.Delete(r.Context(), principal, perms, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
