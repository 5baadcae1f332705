// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/service"
	"github.com/agrodesk/agrodesk/internal/store"
)

// A partially applied reassignment wraps the store failure that stopped it,
// so the error matches two mapped sentinels at once. The incomplete-state
// code must win every time, not whichever the lookup happens to hit first.
func TestRespondError_WrappedSentinelsAreDeterministic(t *testing.T) {
	err := fmt.Errorf("%w: rewrote clients; failed on farmers: %w",
		service.ErrReassignIncomplete, store.ErrVersionConflict)

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users/user-a/reassign", nil)

		respondError(rec, req, err)

		require.Equal(t, http.StatusInternalServerError, rec.Code, "iteration %d", i)
		require.Equal(t, "reassign_incomplete", errorCode(t, rec), "iteration %d", i)
	}
}

func TestRespondError_OrphanPartialFailure(t *testing.T) {
	err := fmt.Errorf("%w: cleared clients: %w",
		service.ErrOrphanIncomplete, store.ErrVersionConflict)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/user-a", nil)

	respondError(rec, req, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "orphan_incomplete", errorCode(t, rec))
}

func TestRespondError_PlainVersionConflict(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/clients/client-1", nil)

	respondError(rec, req, fmt.Errorf("saving collection: %w", store.ErrVersionConflict))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "version_conflict", errorCode(t, rec))
}
