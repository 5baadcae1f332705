// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/service"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

// principalFromRequest pulls the authenticated principal and its permission
// set out of the request context. The auth middleware always stores both;
// a miss means the route was wired outside the authenticated group.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (models.Principal, policy.PermissionSet, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Principal{}, nil, false
	}

	perms, ok := utils.GetPermissionsFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no permissions in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Principal{}, nil, false
	}

	return principal, perms, true
}

// recordRoutes builds the CRUD route tree shared by clients, farmers,
// tasks, and complaints. One generic set of handlers keeps the transport
// identical across the four record types; the visibility and mutation rules
// live in the service underneath.
func recordRoutes[T policy.Owned](h *Handler, svc service.RecordService[T]) chi.Router {
	r := chi.NewRouter()

	r.Get("/", listRecords(svc))
	r.Post("/", createRecord(svc))
	r.Get("/{id}", getRecord(svc))
	r.Put("/{id}", updateRecord(svc))
	r.Delete("/{id}", deleteRecord(svc))

	return r
}

func listRecords[T policy.Owned](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, perms, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		search := r.URL.Query().Get("q")

		records, err := svc.List(r.Context(), principal, perms, search)
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, records, http.StatusOK)
	}
}

func getRecord[T policy.Owned](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, perms, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		record, err := svc.Get(r.Context(), principal, perms, chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, record, http.StatusOK)
	}
}

func createRecord[T policy.Owned](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, perms, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		var record T
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), principal, perms, record)
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, created, http.StatusCreated)
	}
}

func updateRecord[T policy.Owned](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, perms, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		var record T
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), principal, perms, record)
		if err != nil {
			respondError(w, r, err)
			return
		}

		utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func deleteRecord[T policy.Owned](svc service.RecordService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, perms, ok := principalFromRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), principal, perms, chi.URLParam(r, "id")); err != nil {
			respondError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
