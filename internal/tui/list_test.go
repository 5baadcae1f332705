// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/internal/client"
	"github.com/agrodesk/agrodesk/models"
)

func TestRowsFor_Clients(t *testing.T) {
	snap := client.Snapshot{
		Clients: []models.Client{
			{ID: "client-1", Name: "Green Valley Co-op", Type: models.ClientCorporate, Status: models.RecordActive, Phone: "+7 700 000 00 00"},
			{ID: "client-2", Name: "Steppe Agro", Type: models.ClientIndividual, Status: models.RecordInactive, Email: "office@steppe.example"},
		},
	}

	rows := rowsFor(kindClients, snap)

	require.Len(t, rows, 2)
	assert.Equal(t, "client-1", rows[0].id)
	assert.Equal(t, "Green Valley Co-op", rows[0].title)
	assert.Equal(t, "+7 700 000 00 00", rows[0].contact)
	assert.Equal(t, "office@steppe.example", rows[1].contact)
}

func TestRowsFor_UsersShowEmailInMeta(t *testing.T) {
	snap := client.Snapshot{
		Users: []models.User{
			{ID: "user-1", Name: "Aigerim", Email: "aigerim@agrodesk.example", Status: models.UserActive},
		},
	}

	rows := rowsFor(kindUsers, snap)

	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].meta, "aigerim@agrodesk.example")
	assert.Equal(t, "aigerim@agrodesk.example", rows[0].contact)
}

func TestRowsFor_UnknownKindIsNil(t *testing.T) {
	assert.Nil(t, rowsFor(resourceKind(99), client.Snapshot{}))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long text", truncate("long text", 9))
	assert.Equal(t, "long tex…", truncate("long text and more", 9))
}

func TestReassignCandidates(t *testing.T) {
	users := []models.User{
		{ID: "user-victim", Name: "Leaving", Status: models.UserActive},
		{ID: "user-a", Name: "Aibek", Status: models.UserActive},
		{ID: "user-b", Name: "Dormant", Status: models.UserInactive},
	}

	candidates := reassignCandidates(users, "user-victim")

	require.Len(t, candidates, 1)
	assert.Equal(t, "user-a", candidates[0].ID)
}

func TestOrphanModelConfirmed(t *testing.T) {
	m := newOrphanModel(models.User{ID: "user-gone", Name: "Gone"})

	assert.False(t, m.confirmed())

	m.confirm.SetValue("user-wrong")
	assert.False(t, m.confirmed())

	m.confirm.SetValue("  user-gone  ")
	assert.True(t, m.confirmed())
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{adapter.ErrUnauthorized, "session expired, log in again"},
		{fmt.Errorf("wrap: %w", adapter.ErrForbidden), "you do not have permission for that"},
		{adapter.ErrNotFound, "record not found, it may have been removed"},
		{fmt.Errorf("boom"), "boom"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}
