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

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	forms, err := h.services.FormService.List(r.Context(), principal, perms, r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, forms, http.StatusOK)
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	form, err := h.services.FormService.Get(r.Context(), principal, perms, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var form models.DigitalForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.FormService.Create(r.Context(), principal, perms, form)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var form models.DigitalForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	form.ID = chi.URLParam(r, "id")

	updated, err := h.services.FormService.Update(r.Context(), principal, perms, form)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteForm(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.FormService.Delete(r.Context(), principal, perms, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	principal, perms, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	submissions, err := h.services.FormService.Submissions(r.Context(), principal, perms, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, submissions, http.StatusOK)
}

// getPublishedForm serves the unauthenticated form endpoint. Only published
// forms are exposed; drafts and archived forms read as not found.
func (h *Handler) getPublishedForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.services.FormService.GetPublished(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	submission, err := h.services.FormService.Submit(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, submission, http.StatusCreated)
}
