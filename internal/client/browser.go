// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/models"
)

// Snapshot is one coherent view of every record list the console browses.
// All slices reflect the server-side visibility filter for the logged-in
// user: agents see their own records, administrators see everything.
type Snapshot struct {
	Clients    []models.Client
	Farmers    []models.Farmer
	Tasks      []models.Task
	Complaints []models.Complaint
	Forms      []models.DigitalForm
	Users      []models.User

	// FetchedAt is when this snapshot was taken; the zero value means no
	// refresh has completed yet.
	FetchedAt time.Time
}

// Browser caches the record lists shown by the console and refreshes them
// from the server. A background refresh job calls Refresh periodically so
// list screens render from the cache without waiting on the network.
type Browser struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu   sync.RWMutex
	snap Snapshot
}

func NewBrowser(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Browser {
	return &Browser{adapter: serverAdapter, logger: logger}
}

// Refresh re-fetches all record lists. Collections the user may not read
// answer with a forbidden error; those keep their previous contents instead
// of failing the whole refresh. Any other error aborts and leaves the cache
// untouched.
func (b *Browser) Refresh(ctx context.Context) error {
	next := b.Snapshot()

	if err := refreshList(ctx, &next.Clients, func() ([]models.Client, error) {
		return b.adapter.ListClients(ctx, "")
	}); err != nil {
		return err
	}
	if err := refreshList(ctx, &next.Farmers, func() ([]models.Farmer, error) {
		return b.adapter.ListFarmers(ctx, "")
	}); err != nil {
		return err
	}
	if err := refreshList(ctx, &next.Tasks, func() ([]models.Task, error) {
		return b.adapter.ListTasks(ctx, "")
	}); err != nil {
		return err
	}
	if err := refreshList(ctx, &next.Complaints, func() ([]models.Complaint, error) {
		return b.adapter.ListComplaints(ctx, "")
	}); err != nil {
		return err
	}
	if err := refreshList(ctx, &next.Forms, func() ([]models.DigitalForm, error) {
		return b.adapter.ListForms(ctx, "")
	}); err != nil {
		return err
	}
	if err := refreshList(ctx, &next.Users, func() ([]models.User, error) {
		return b.adapter.ListUsers(ctx, "")
	}); err != nil {
		return err
	}

	next.FetchedAt = time.Now()

	b.mu.Lock()
	b.snap = next
	b.mu.Unlock()
	return nil
}

// refreshList replaces dst with a fresh fetch, treating forbidden answers
// as "keep what we had".
func refreshList[T any](_ context.Context, dst *[]T, fetch func() ([]T, error)) error {
	items, err := fetch()
	if err != nil {
		if errors.Is(err, adapter.ErrForbidden) {
			return nil
		}
		return err
	}
	*dst = items
	return nil
}

// Snapshot returns the most recent cached view. The returned value shares
// its slices with the cache; callers must not mutate them.
func (b *Browser) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}
